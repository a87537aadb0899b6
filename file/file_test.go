package file

import (
	"testing"

	"github.com/0d0b3nus/chorale-writer/model"
	"github.com/stretchr/testify/assert"
)

func TestCreateFileNumMap(t *testing.T) {
	m := CreateFileNumMap([]string{"corpus/b.mid", "corpus/a.mid"})
	assert.Equal(t, model.FileNumToMidiPath{0: "corpus/b.mid", 1: "corpus/a.mid"}, m)
	assert.Empty(t, CreateFileNumMap(nil))
}

func TestBaseNames(t *testing.T) {
	m := CreateFileNumMap([]string{"corpus/x/bwv1.mid", "corpus/bwv2.mid", "bwv3.mid"})
	assert.Equal(t, []string{"bwv1.mid", "bwv2.mid", "bwv3.mid"}, BaseNames(m))
}
