package trajectory

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"github.com/swervelib/swervecontrol/drive"
)

// fileSample is the wire form of a single sample in a trajectory document.
type fileSample struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Heading         float64 `json:"heading"`
	AngularVelocity float64 `json:"angularVelocity"`
	VelocityX       float64 `json:"velocityX"`
	VelocityY       float64 `json:"velocityY"`
	Timestamp       float64 `json:"timestamp"`
}

// trajectoryFile is a trajectory document: a JSON object whose "samples"
// field holds the time-ordered sample list.
type trajectoryFile struct {
	Samples []fileSample `json:"samples"`
}

// Load reads and parses the trajectory document at the given path.
func Load(path string) (*Trajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open trajectory file %q", path)
	}
	defer goutils.UncheckedErrorFunc(f.Close)
	traj, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load trajectory file %q", path)
	}
	return traj, nil
}

// Read parses a trajectory document from r.
func Read(r io.Reader) (*Trajectory, error) {
	var file trajectoryFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, errors.Wrap(err, "malformed trajectory document")
	}
	samples := make([]Sample, 0, len(file.Samples))
	for _, fs := range file.Samples {
		samples = append(samples, Sample{
			Timestamp: fs.Timestamp,
			State:     drive.NewState(fs.X, fs.Y, fs.Heading, fs.VelocityX, fs.VelocityY, fs.AngularVelocity),
		})
	}
	return New(samples)
}
