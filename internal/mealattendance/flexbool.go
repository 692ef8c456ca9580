package mealattendance

import (
	"strconv"
	"strings"
)

// FlexBool accepts the loosely typed flag forms clients send for meal
// selections: JSON booleans, numbers, and the string tokens
// "true/1/yes/y/on" and "false/0/no/n/off" (case-insensitive). Anything
// else falls back to generic truthiness: empty and null are false, any
// other value is true. DTOs use *FlexBool so an omitted field stays nil.
type FlexBool bool

var truthyTokens = map[string]bool{
	"true": true, "1": true, "yes": true, "y": true, "on": true,
}

var falsyTokens = map[string]bool{
	"false": true, "0": true, "no": true, "n": true, "off": true, "": true,
}

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))

	switch s {
	case "null":
		*b = false
		return nil
	case "true":
		*b = true
		return nil
	case "false":
		*b = false
		return nil
	}

	if unquoted, err := strconv.Unquote(s); err == nil {
		token := strings.ToLower(strings.TrimSpace(unquoted))
		switch {
		case truthyTokens[token]:
			*b = true
		case falsyTokens[token]:
			*b = false
		default:
			// generic truthiness: any other non-empty string
			*b = true
		}
		return nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*b = f != 0
		return nil
	}

	// objects and arrays are truthy
	*b = true
	return nil
}

func (b *FlexBool) Bool() bool {
	if b == nil {
		return false
	}
	return bool(*b)
}
