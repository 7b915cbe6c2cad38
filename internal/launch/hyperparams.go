package launch

import (
	"strconv"

	"github.com/tsellier/cpctrain/internal/profile"
)

// Hyperparameters is the fixed flag set passed to the trainer ahead of any
// forwarded arguments. Field and flag names follow the trainer's argparse
// surface. A caller overrides a default by repeating the flag after it; the
// trainer's parser takes the last occurrence.
type Hyperparameters struct {
	HiddenEncoder       int
	HiddenGar           int
	NPredicts           int
	NegativeSamplingExt int
	LearningRate        float64
	NEpoch              int
	BatchSizeGPU        int
	SizeWindow          int
	NLevelsGRU          int
	SaveStep            int
	FileExtension       string
}

// DefaultHyperparameters returns the project's standard training setup.
func DefaultHyperparameters() Hyperparameters {
	return Hyperparameters{
		HiddenEncoder:       256,
		HiddenGar:           256,
		NPredicts:           12,
		NegativeSamplingExt: 128,
		LearningRate:        2e-4,
		NEpoch:              200,
		BatchSizeGPU:        8,
		SizeWindow:          20480,
		NLevelsGRU:          1,
		SaveStep:            5,
		FileExtension:       ".flac",
	}
}

// Args renders the flags in a fixed order.
func (h Hyperparameters) Args() []string {
	return []string{
		"--hiddenEncoder", strconv.Itoa(h.HiddenEncoder),
		"--hiddenGar", strconv.Itoa(h.HiddenGar),
		"--nPredicts", strconv.Itoa(h.NPredicts),
		"--negativeSamplingExt", strconv.Itoa(h.NegativeSamplingExt),
		"--learningRate", strconv.FormatFloat(h.LearningRate, 'g', -1, 64),
		"--nEpoch", strconv.Itoa(h.NEpoch),
		"--batchSizeGPU", strconv.Itoa(h.BatchSizeGPU),
		"--sizeWindow", strconv.Itoa(h.SizeWindow),
		"--nLevelsGRU", strconv.Itoa(h.NLevelsGRU),
		"--save_step", strconv.Itoa(h.SaveStep),
		"--file_extension", h.FileExtension,
	}
}

// ApplyProfile overrides defaults with whatever the profile sets.
func (h *Hyperparameters) ApplyProfile(p *profile.Profile) {
	if p == nil || p.Hyperparameters == nil {
		return
	}
	o := p.Hyperparameters
	if o.HiddenEncoder != nil {
		h.HiddenEncoder = *o.HiddenEncoder
	}
	if o.HiddenGar != nil {
		h.HiddenGar = *o.HiddenGar
	}
	if o.NPredicts != nil {
		h.NPredicts = *o.NPredicts
	}
	if o.NegativeSamplingExt != nil {
		h.NegativeSamplingExt = *o.NegativeSamplingExt
	}
	if o.LearningRate != nil {
		h.LearningRate = *o.LearningRate
	}
	if o.NEpoch != nil {
		h.NEpoch = *o.NEpoch
	}
	if o.BatchSizeGPU != nil {
		h.BatchSizeGPU = *o.BatchSizeGPU
	}
	if o.SizeWindow != nil {
		h.SizeWindow = *o.SizeWindow
	}
	if o.NLevelsGRU != nil {
		h.NLevelsGRU = *o.NLevelsGRU
	}
	if o.SaveStep != nil {
		h.SaveStep = *o.SaveStep
	}
	if o.FileExtension != nil {
		h.FileExtension = *o.FileExtension
	}
}
