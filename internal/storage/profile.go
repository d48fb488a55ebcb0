package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"flashcards/internal/app"
)

var ErrMalformedProfile = errors.New("malformed profile")

// Suffix of the copy of a profile file which couldn't be parsed.
const BACKUP_SUFFIX = ".bak"

// JSON file with the user's profile. The file is rewritten in full
// on every save.
type ProfileFile struct {
	path string
}

var _ app.ProfileStore = (*ProfileFile)(nil)

func NewProfileFile(path string) *ProfileFile {
	return &ProfileFile{
		path: path,
	}
}

func (f *ProfileFile) Path() string {
	return f.path
}

// Returns an empty profile when the file doesn't exist.
//
// If the file can't be read or parsed, an empty profile is returned too,
// together with ErrMalformedProfile. A file that can't be parsed is moved to
// the path with BACKUP_SUFFIX to not lose it on the next save.
func (f *ProfileFile) Load() (app.Profile, error) {
	data, err := os.ReadFile(f.path)

	if errors.Is(err, fs.ErrNotExist) {
		return app.NewProfile(), nil
	}

	if err != nil {
		return app.NewProfile(), fmt.Errorf("%w: %s: %w", ErrMalformedProfile, f.path, err)
	}

	var profile app.Profile

	err = json.Unmarshal(data, &profile)

	if err != nil {
		backupErr := os.Rename(f.path, f.path+BACKUP_SUFFIX)

		return app.NewProfile(), errors.Join(
			fmt.Errorf("%w: %s: %w", ErrMalformedProfile, f.path, err),
			backupErr,
		)
	}

	if profile.CompletedLessons == nil {
		profile.CompletedLessons = map[string]bool{}
	}

	profile.XP = max(profile.XP, 0)
	profile.Streak = max(profile.Streak, 0)
	profile.CorrectAnswerStreak = max(profile.CorrectAnswerStreak, 0)

	return profile, nil
}

func (f *ProfileFile) Save(profile app.Profile) error {
	if profile.CompletedLessons == nil {
		profile.CompletedLessons = map[string]bool{}
	}

	data, err := json.MarshalIndent(profile, "", "    ")

	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)

	err = os.MkdirAll(dir, 0o755)

	if err != nil {
		return err
	}

	return os.WriteFile(f.path, data, 0o644)
}
