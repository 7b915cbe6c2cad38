package launch

import (
	"strings"
	"testing"

	"github.com/tsellier/cpctrain/internal/profile"
)

func TestDefaultHyperparametersArgs(t *testing.T) {
	args := DefaultHyperparameters().Args()
	if len(args)%2 != 0 {
		t.Fatalf("Args() returned odd-length list: %v", args)
	}

	rendered := strings.Join(args, " ")
	for _, want := range []string{
		"--hiddenEncoder 256",
		"--learningRate 0.0002",
		"--nEpoch 200",
		"--batchSizeGPU 8",
		"--file_extension .flac",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Args() = %q, missing %q", rendered, want)
		}
	}
}

func TestArgsOrderIsStable(t *testing.T) {
	first := strings.Join(DefaultHyperparameters().Args(), " ")
	second := strings.Join(DefaultHyperparameters().Args(), " ")
	if first != second {
		t.Errorf("Args() order not stable:\n%s\n%s", first, second)
	}
}

func TestApplyProfile(t *testing.T) {
	nEpoch := 100
	lr := 1e-4
	hp := DefaultHyperparameters()
	hp.ApplyProfile(&profile.Profile{
		Hyperparameters: &profile.Hyperparameters{
			NEpoch:       &nEpoch,
			LearningRate: &lr,
		},
	})

	if hp.NEpoch != 100 {
		t.Errorf("NEpoch = %d, want 100", hp.NEpoch)
	}
	if hp.LearningRate != 1e-4 {
		t.Errorf("LearningRate = %g, want 1e-4", hp.LearningRate)
	}
	// Untouched fields keep their defaults.
	if hp.HiddenEncoder != 256 {
		t.Errorf("HiddenEncoder = %d, want 256", hp.HiddenEncoder)
	}

	rendered := strings.Join(hp.Args(), " ")
	if !strings.Contains(rendered, "--nEpoch 100") {
		t.Errorf("Args() = %q, missing overridden --nEpoch 100", rendered)
	}
}

func TestApplyProfileNil(t *testing.T) {
	hp := DefaultHyperparameters()
	hp.ApplyProfile(nil)
	if hp.NEpoch != 200 {
		t.Errorf("NEpoch = %d, want 200 after nil profile", hp.NEpoch)
	}
}
