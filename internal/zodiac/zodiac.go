// Package zodiac derives age and Chinese zodiac sign from a birth date.
package zodiac

import "time"

// signs is the fixed 12-year cycle anchored at 1900 (a Rat year).
var signs = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// Sign returns the Chinese zodiac sign for a Gregorian birth year.
//
// The mapping is (year-1900) mod 12 over the fixed cycle. It ignores
// the Lunar New Year cutoff: people born in January or early February
// get the sign of the Gregorian year, not the lunar one.
func Sign(year int) string {
	i := (year - 1900) % 12
	if i < 0 {
		i += 12
	}
	return signs[i]
}

// Age returns the age in whole years on the given date.
//
// The birth values are taken as-is; range validation is the form's
// responsibility. Out-of-range input yields an arithmetic result.
func Age(day, month, year int, today time.Time) int {
	age := today.Year() - year
	tm := int(today.Month())
	td := today.Day()
	if month > tm || (month == tm && day > td) {
		age--
	}
	return age
}
