package main

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"unicode"
)

// Keyboard layouts, ordered by how easy the keys are to reach.
var _alphabetPresets = map[string]string{
	"numeric":            "1234567890",
	"abcd":               "abcd",
	"qwerty":             "asdfqwerzxcvjklmiuopghtybn",
	"qwerty-homerow":     "asdfjklgh",
	"qwerty-left-hand":   "asdfqwerzcxv",
	"qwerty-right-hand":  "jkluiopmyhn",
	"azerty":             "qsdfazerwxcvjklmuiopghtybn",
	"azerty-homerow":     "qsdfjkmgh",
	"azerty-left-hand":   "qsdfazerwxcv",
	"azerty-right-hand":  "jklmuiophyn",
	"qwertz":             "asdfqweryxcvjkluiopmghtzbn",
	"qwertz-homerow":     "asdfghjkl",
	"qwertz-left-hand":   "asdfqweryxcv",
	"qwertz-right-hand":  "jkluiopmhzn",
	"dvorak":             "aoeuqjkxpyhtnsgcrlmwvzfidb",
	"dvorak-homerow":     "aoeuhtnsid",
	"dvorak-left-hand":   "aoeupqjkyix",
	"dvorak-right-hand":  "htnsgcrlmwvz",
	"colemak":            "arstqwfpzxcvneioluymdhgjbk",
	"colemak-homerow":    "arstneiodh",
	"colemak-left-hand":  "arstqwfpzxcv",
	"colemak-right-hand": "neioluymjhk",
}

const _defaultAlphabet alphabet = "asdfqwerzxcvjklmiuopghtybn" // qwerty

// alphabet is the set of characters hints are built from. It may be set
// to the name of a preset or to the characters themselves.
type alphabet string

var _ flag.Value = (*alphabet)(nil)

func (al *alphabet) String() string {
	return string(*al)
}

func (al *alphabet) Set(s string) error {
	if preset, ok := _alphabetPresets[s]; ok {
		s = preset
	}
	if err := alphabet(s).Validate(); err != nil {
		return err
	}
	*al = alphabet(s)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the config file.
func (al *alphabet) UnmarshalText(b []byte) error {
	return al.Set(string(b))
}

// Validate reports whether the alphabet can be used for hints.
// Uppercase letters are reserved to request the alternate command.
func (al alphabet) Validate() error {
	if len(al) == 0 {
		return errors.New("alphabet must not be empty")
	}

	seen := make(map[rune]struct{}, len(al))
	dupes := make(map[rune]struct{})
	for _, r := range al {
		switch {
		case !unicode.IsPrint(r) || unicode.IsSpace(r):
			return fmt.Errorf("alphabet has unprintable character %q", r)
		case unicode.ToLower(r) != r:
			// Covers titlecase letters such as 'ǅ' too.
			return fmt.Errorf("alphabet has uppercase character %q", r)
		}

		if _, ok := seen[r]; ok {
			dupes[r] = struct{}{}
		}
		seen[r] = struct{}{}
	}

	if len(dupes) == 0 {
		return nil
	}

	dlist := make([]rune, 0, len(dupes))
	for r := range dupes {
		dlist = append(dlist, r)
	}
	sort.Slice(dlist, func(i, j int) bool {
		return dlist[i] < dlist[j]
	})

	return fmt.Errorf("alphabet has duplicates: %q", dlist)
}
