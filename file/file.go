package file

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jsphweid/pcset/model"
	"github.com/pkg/errors"
)

func IsMidiPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi")
}

// GatherAllMidiPaths walks each root and collects MIDI files in walk order. A
// root that is itself a file is taken as is. maxNum of 0 means no limit.
func GatherAllMidiPaths(roots []string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if maxNum > 0 && len(res) >= maxNum {
			return filepath.SkipDir
		}
		if !d.IsDir() && IsMidiPath(s) {
			res = append(res, s)
		}
		return nil
	}
	for _, root := range roots {
		if err := filepath.WalkDir(root, walk); err != nil {
			return nil, errors.Wrapf(err, "error walking %v", root)
		}
	}
	return res, nil
}

func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}
