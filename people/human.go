// SPDX-License-Identifier: MIT

package people

import (
	"fmt"
	"strings"
)

// Human is a named person with an age and an email address.
type Human struct {
	Name  string
	Age   int
	Email string
}

// Baby returns a newborn with a default gmail address derived from name.
func Baby(name string) Human {
	return Human{
		Name:  name,
		Age:   0,
		Email: name + "@gmail.com",
	}
}

// Describe renders "<name>, aged <age> with email <email>.".
func (h Human) Describe() string {
	return fmt.Sprintf("%s, aged %d with email %s.", h.Name, h.Age, h.Email)
}

// UsesGmail reports whether the address is a gmail.com one.
func (h Human) UsesGmail() bool { return strings.HasSuffix(h.Email, "gmail.com") }

// UsesYahoo reports whether the address is a yahoo.com one.
func (h Human) UsesYahoo() bool { return strings.HasSuffix(h.Email, "yahoo.com") }

// SetName overwrites the name in place.
func (h *Human) SetName(name string) { h.Name = name }

// HasSameName compares names exactly.
func (h Human) HasSameName(other Human) bool { return h.Name == other.Name }

// WithAge returns a copy of h with Age replaced; h is unchanged.
func (h Human) WithAge(age int) Human {
	h.Age = age

	return h
}
