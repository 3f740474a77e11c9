// Package artifact loads the pre-trained scoring artifacts: a fitted min-max
// scaler and a gradient-boosted tree classifier. Both are produced by an
// offline training job and shipped alongside the server as opaque binary
// files. They are deserialized once at startup and shared read-only for the
// life of the process.
package artifact

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	dErrors "churnsight/pkg/domain-errors"
)

// Format tags inside the envelope guard against loading the wrong file.
const (
	FormatScaler = "churnsight/minmax-scaler"
	FormatModel  = "churnsight/tree-ensemble"

	// CodecVersion is bumped whenever the payload layout changes.
	CodecVersion = 1
)

// envelope wraps every serialized artifact with its format and version so a
// stale or mismatched file fails loudly instead of mis-decoding.
type envelope struct {
	Format  string
	Version int
	Payload []byte
}

// Load reads both artifacts from disk. A missing file is a terminal
// artifact_missing error; main logs it and exits before serving.
func Load(modelPath, scalerPath string) (*TreeEnsemble, *MinMaxScaler, error) {
	var model TreeEnsemble
	if err := loadFile(modelPath, FormatModel, &model); err != nil {
		return nil, nil, err
	}
	var scaler MinMaxScaler
	if err := loadFile(scalerPath, FormatScaler, &scaler); err != nil {
		return nil, nil, err
	}
	return &model, &scaler, nil
}

// Save writes an artifact to disk inside a versioned envelope. Used by the
// offline producer and by tests.
func Save(path, format string, m interface{ MarshalBinary() ([]byte, error) }) error {
	payload, err := m.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal %s: %w", format, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(envelope{Format: format, Version: CodecVersion, Payload: payload})
}

func loadFile(path, format string, m interface{ UnmarshalBinary([]byte) error }) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dErrors.Newf(dErrors.CodeArtifactMissing, "artifact file %s not found", path)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "open artifact")
	}
	defer f.Close()
	return decode(f, format, m)
}

func decode(r io.Reader, format string, m interface{ UnmarshalBinary([]byte) error }) error {
	var env envelope
	if err := gob.NewDecoder(r).Decode(&env); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "decode artifact envelope")
	}
	if env.Format != format {
		return dErrors.Newf(dErrors.CodeInternal, "artifact format %q, want %q", env.Format, format)
	}
	if env.Version != CodecVersion {
		return dErrors.Newf(dErrors.CodeInternal, "artifact codec version %d, want %d", env.Version, CodecVersion)
	}
	if err := m.UnmarshalBinary(env.Payload); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "decode artifact payload")
	}
	return nil
}
