package manifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/result/internal/logger"
	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/chain"
)

// Parse validates data against the manifest schema and decodes it.
// Unknown keys are rejected.
func Parse(data []byte) rop.Result[*Manifest] {
	return rop.AndThen(
		rop.From(data, validateSchema(data)),
		decode,
	)
}

func decode(data []byte) rop.Result[*Manifest] {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	m := &Manifest{}
	if err := dec.Decode(m); err != nil {
		if errors.Is(err, io.EOF) {
			return rop.Err[*Manifest](fmt.Errorf("%w: empty document", ErrInvalidManifest))
		}
		return rop.Err[*Manifest](fmt.Errorf("%w: %v", ErrInvalidManifest, err))
	}
	return rop.Ok(m)
}

// Load reads and parses the manifest at path.
func Load(path string) rop.Result[*Manifest] {
	data, err := os.ReadFile(path)
	if err != nil {
		return rop.Err[*Manifest](fmt.Errorf("reading manifest: %w", err))
	}
	return Parse(data).MapErr(func(err error) error {
		return fmt.Errorf("%s: %w", path, err)
	})
}

// Check loads the manifest at path and runs every rule on it. Callers
// that report warnings get them from Warnings.
func Check(ctx context.Context, path string) rop.Result[*Manifest] {
	log := logger.Logger()

	return chain.Start(ctx, Load(path)).
		Then(func(ctx context.Context, m *Manifest) rop.Result[*Manifest] {
			return Validate(ctx, m)
		}).
		Ensure(
			func(ctx context.Context, m *Manifest) {
				log.Debugw("manifest ok", "path", path, "name", m.Name, "version", m.Version,
					"warnings", len(Warnings(m)))
			},
			func(ctx context.Context, err error) {
				log.Debugw("manifest rejected", "path", path, "error", err)
			}).
		Result()
}

// Marshal renders m as YAML with the manifest key order.
func Marshal(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}
