package file

import (
	"path/filepath"

	"github.com/0d0b3nus/chorale-writer/model"
	"github.com/0d0b3nus/chorale-writer/util"
)

// CreateFileNumMap numbers paths in the order given, starting at 0.
func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[model.FileNum(i)] = v
	}
	return res
}

// BaseNames lists the file name of every path in file number order. The
// metadata table is keyed by these.
func BaseNames(m model.FileNumToMidiPath) []string {
	nums := util.GetSortedKeys(m)
	res := make([]string, len(nums))
	for i, num := range nums {
		res[i] = filepath.Base(m[num])
	}
	return res
}
