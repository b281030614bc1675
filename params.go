package lowmc

import "fmt"

// ParamSet is an immutable parameter set for one LowMC/Picnic security
// level. A ParamSet carries no package-level state: it is constructed once
// by Lookup and then passed by value into the constant generator and held
// as an immutable field of a Cipher instance, so nothing in this package
// depends on process-wide globals.
type ParamSet struct {
	Tag       string // e.g. "picnic-L1"
	BlockSize int    // bits
	KeySize   int    // bits
	Rounds    int
	NumSBoxes int // number of 3-bit S-boxes applied per round
}

// BlockBytes returns the block size in bytes.
func (p ParamSet) BlockBytes() int {
	return p.BlockSize / 8
}

// KeyBytes returns the key size in bytes.
func (p ParamSet) KeyBytes() int {
	return p.KeySize / 8
}

// paramSets is the fixed registry of defined Picnic parameter sets. Only
// these three spellings are accepted; in particular the "-FS"-suffixed
// tags that appear in some Picnic test drivers are deliberately rejected
// rather than silently aliased.
var paramSets = map[string]ParamSet{
	"picnic-L1": {Tag: "picnic-L1", BlockSize: 128, KeySize: 128, Rounds: 20, NumSBoxes: 10},
	"picnic-L3": {Tag: "picnic-L3", BlockSize: 192, KeySize: 192, Rounds: 30, NumSBoxes: 10},
	"picnic-L5": {Tag: "picnic-L5", BlockSize: 256, KeySize: 256, Rounds: 38, NumSBoxes: 10},
}

// Lookup resolves a security-level tag to its ParamSet. It returns a
// *ConfigurationError for any tag that is not exactly one of "picnic-L1",
// "picnic-L3" or "picnic-L5".
func Lookup(tag string) (ParamSet, error) {
	p, ok := paramSets[tag]
	if !ok {
		return ParamSet{}, &ConfigurationError{
			Field:   "tag",
			Value:   tag,
			Message: fmt.Sprintf("unrecognised parameter tag %q", tag),
			Err:     ErrUnknownParameterTag,
		}
	}
	return p, nil
}
