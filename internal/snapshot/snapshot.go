// Package snapshot persists the raw form input of a generated contract so it
// can be reloaded and replayed later.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"CT-MUSICAL/internal/models"
)

// CurrentVersion is written to every new snapshot.
const CurrentVersion = 1

// ErrExists is returned by Save when the target file is already present.
var ErrExists = errors.New("snapshot already exists")

// Snapshot is the persisted form input. Values holds the raw strings
// exactly as typed.
type Snapshot struct {
	Values                      models.FormValues          `json:"values" yaml:"values"`
	Sound                       models.SoundResponsibility `json:"som" yaml:"som"`
	Catering                    models.Catering            `json:"alimentacao" yaml:"alimentacao"`
	BeneficiarySameAsContracted bool                       `json:"favorecido_igual_contratado" yaml:"favorecido_igual_contratado"`
	Version                     int                        `json:"versao" yaml:"versao"`
}

// New captures values and choices. The values map is copied.
func New(values models.FormValues, choices models.Choices) Snapshot {
	return Snapshot{
		Values:                      values.Clone(),
		Sound:                       choices.Sound,
		Catering:                    choices.Catering,
		BeneficiarySameAsContracted: choices.BeneficiarySameAsContracted,
		Version:                     CurrentVersion,
	}
}

// Choices returns the categorical answers stored in s.
func (s Snapshot) Choices() models.Choices {
	return models.Choices{
		Sound:                       s.Sound,
		Catering:                    s.Catering,
		BeneficiarySameAsContracted: s.BeneficiarySameAsContracted,
	}
}

// Encode writes s as indented UTF-8 JSON with no HTML or ASCII escaping.
func Encode(w io.Writer, s Snapshot) error {
	if s.Values == nil {
		s.Values = models.FormValues{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// Save writes s to path. An existing file is never overwritten.
func Save(path string, s Snapshot) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}
	return nil
}

// stored mirrors Snapshot with pointers so absent keys can be told apart
// from explicit zero values.
type stored struct {
	Values                      map[string]string `json:"values" yaml:"values"`
	Sound                       *string           `json:"som" yaml:"som"`
	Catering                    *string           `json:"alimentacao" yaml:"alimentacao"`
	BeneficiarySameAsContracted *bool             `json:"favorecido_igual_contratado" yaml:"favorecido_igual_contratado"`
	Version                     *int              `json:"versao" yaml:"versao"`
}

func (st stored) snapshot() Snapshot {
	s := Snapshot{
		Values:   models.FormValues(st.Values),
		Sound:    models.SoundClient,
		Catering: models.CateringNo,
		Version:  CurrentVersion,
	}
	if s.Values == nil {
		s.Values = models.FormValues{}
	}
	if st.Sound != nil {
		s.Sound = models.SoundResponsibility(*st.Sound)
	}
	if st.Catering != nil {
		s.Catering = models.Catering(*st.Catering)
	}
	if st.BeneficiarySameAsContracted != nil {
		s.BeneficiarySameAsContracted = *st.BeneficiarySameAsContracted
	}
	if st.Version != nil {
		s.Version = *st.Version
	}
	return s
}

// Decode reads a JSON snapshot. Missing keys take the form defaults:
// som "Contratante", alimentacao "Não", favorecido_igual_contratado false.
func Decode(r io.Reader) (Snapshot, error) {
	var st stored
	if err := json.NewDecoder(r).Decode(&st); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return st.snapshot(), nil
}

// DecodeYAML is Decode for YAML input.
func DecodeYAML(r io.Reader) (Snapshot, error) {
	var st stored
	if err := yaml.NewDecoder(r).Decode(&st); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return st.snapshot(), nil
}

// IsYAML reports whether name carries a YAML extension.
func IsYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// DecodeNamed picks the decoder from the file name extension.
func DecodeNamed(name string, r io.Reader) (Snapshot, error) {
	if IsYAML(name) {
		return DecodeYAML(r)
	}
	return Decode(r)
}

// Load reads the snapshot at path, as YAML for .yaml/.yml and JSON otherwise.
func Load(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	return DecodeNamed(path, f)
}
