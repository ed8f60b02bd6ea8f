package users

import "errors"

// ValidatePreferences checks the replacement preferences for shape only;
// anything structurally sound is accepted.
func ValidatePreferences(prefs *Preferences) error {
	if prefs.MinRating < 0 || prefs.MinRating > 10 {
		return errors.New("minRating must be between 0 and 10")
	}

	start, end := prefs.ReleaseYearRange.Start, prefs.ReleaseYearRange.End
	if start != 0 && end != 0 && start > end {
		return errors.New("releaseYearRange start cannot be after end")
	}

	return nil
}
