package store

import (
	"embed"
	"io"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/foldkit/foldkit/commonerrors"
)

const classicDatasetPath = "dataset/classic.yaml"

//go:embed dataset/classic.yaml
var datasets embed.FS

var embeddedFS afero.Fs = afero.NewReadOnlyFs(afero.FromIOFS{FS: datasets})

// ClassicOnlineStore returns a fresh copy of the built-in dataset.
func ClassicOnlineStore() (*Mall, error) {
	return LoadMallFromFS(embeddedFS, classicDatasetPath)
}

// LoadMall decodes and validates a YAML dataset.
func LoadMall(r io.Reader) (mall *Mall, err error) {
	if r == nil {
		err = commonerrors.UndefinedParameter("reader")
		return
	}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	m := &Mall{}
	err = decoder.Decode(m)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not decode dataset")
		return
	}
	err = m.Validate()
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid dataset")
		return
	}
	mall = m
	return
}

// LoadMallFromFile is similar to LoadMall but reads the dataset from a file.
func LoadMallFromFile(path string) (*Mall, error) {
	return LoadMallFromFS(afero.NewOsFs(), path)
}

// LoadMallFromFS is similar to LoadMallFromFile but reads the dataset from any file system.
func LoadMallFromFS(fs afero.Fs, path string) (mall *Mall, err error) {
	if fs == nil {
		err = commonerrors.UndefinedParameter("file system")
		return
	}
	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = commonerrors.WrapErrorf(commonerrors.ErrNotFound, err, "could not find dataset %v", path)
		} else {
			err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not open dataset %v", path)
		}
		return
	}
	defer func() { _ = f.Close() }()
	return LoadMall(f)
}
