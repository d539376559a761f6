package trajectory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"
)

const sampleDocument = `{
	"samples": [
		{"x": 0, "y": 0, "heading": 0, "angularVelocity": 0, "velocityX": 0, "velocityY": 0, "timestamp": 0},
		{"x": 4, "y": 0, "heading": 0, "angularVelocity": 0, "velocityX": 2, "velocityY": 0, "timestamp": 2}
	]
}`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "straight.traj")
	test.That(t, os.WriteFile(path, []byte(sampleDocument), 0o600), test.ShouldBeNil)

	traj, err := Load(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, traj.Duration(), test.ShouldAlmostEqual, 2)

	mid := traj.Sample(1.0)
	test.That(t, mid.Pose.Translation().X, test.ShouldAlmostEqual, 2)
	test.That(t, mid.VelocityX, test.ShouldAlmostEqual, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.traj"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot open trajectory file")
}

func TestReadErrors(t *testing.T) {
	for _, tc := range []struct {
		name, doc, errSubstring string
	}{
		{"malformed", `{"samples": [`, "malformed trajectory document"},
		{"empty samples", `{"samples": []}`, "at least one sample"},
		{"no samples field", `{}`, "at least one sample"},
		{
			"decreasing timestamps",
			`{"samples": [
				{"timestamp": 1, "x": 0, "y": 0, "heading": 0, "velocityX": 0, "velocityY": 0, "angularVelocity": 0},
				{"timestamp": 0, "x": 1, "y": 0, "heading": 0, "velocityX": 0, "velocityY": 0, "angularVelocity": 0}
			]}`,
			"non-decreasing",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.doc))
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.errSubstring)
		})
	}
}
