package app

// Persists the profile record. Implemented by storage.ProfileFile.
type ProfileStore interface {
	Load() (Profile, error)
	Save(Profile) error
}
