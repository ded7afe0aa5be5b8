// Package idgen provides short, URL-safe unique ID generation backed by nanoid.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet defines the character set used for the random portion of the ID.
const Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length is the number of random characters generated (excluding the prefix).
const Length = 12

// Accommodation returns a new unique accommodation ID.
func Accommodation() (string, error) {
	return generate("acc-")
}

// Island returns a new unique island ID.
func Island() (string, error) {
	return generate("isl-")
}

func generate(prefix string) (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}
