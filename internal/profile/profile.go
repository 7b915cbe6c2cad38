// Package profile loads the optional per-project hyperparameter override
// file, cpctrain.hcl at the source root.
package profile

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Profile mirrors cpctrain.hcl.
type Profile struct {
	Hyperparameters *Hyperparameters `hcl:"hyperparameters,block"`
}

// Hyperparameters is the override block. Attribute names follow the
// trainer's argparse flags; nil means "keep the default". Forwarded CLI
// arguments still override everything here, since they come last.
type Hyperparameters struct {
	HiddenEncoder       *int     `hcl:"hiddenEncoder,optional"`
	HiddenGar           *int     `hcl:"hiddenGar,optional"`
	NPredicts           *int     `hcl:"nPredicts,optional"`
	NegativeSamplingExt *int     `hcl:"negativeSamplingExt,optional"`
	LearningRate        *float64 `hcl:"learningRate,optional"`
	NEpoch              *int     `hcl:"nEpoch,optional"`
	BatchSizeGPU        *int     `hcl:"batchSizeGPU,optional"`
	SizeWindow          *int     `hcl:"sizeWindow,optional"`
	NLevelsGRU          *int     `hcl:"nLevelsGRU,optional"`
	SaveStep            *int     `hcl:"save_step,optional"`
	FileExtension       *string  `hcl:"file_extension,optional"`
}

// Load reads a profile. A missing file returns (nil, nil); a malformed one
// is an error, surfaced before anything is launched.
func Load(path string) (*Profile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	var p Profile
	if err := hclsimple.DecodeFile(path, nil, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}
