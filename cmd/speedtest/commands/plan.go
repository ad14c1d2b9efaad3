package commands

import (
	"fmt"
	"io"

	"github.com/Dynom/speedtest/timer"
	"github.com/Dynom/speedtest/vector"
	"github.com/sirupsen/logrus"
)

const fillValue = 42

type addFn func(a, b []float64) ([]float64, error)

type variant struct {
	name string
	fn   addFn
}

// stage adds two vectors of size elements with every variant, in order
type stage struct {
	size     int
	variants []variant
}

var (
	add     = variant{name: "add", fn: vector.Add}
	libAdd  = variant{name: "lib_add", fn: vector.LibAdd}
	loopAdd = variant{name: "loop_add", fn: vector.LoopAdd}

	// The loop only runs on the small vectors, on the large ones the two gonum variants are compared
	defaultPlan = []stage{
		{size: 1e5, variants: []variant{add, loopAdd}},
		{size: 1e8, variants: []variant{libAdd, add}},
	}
)

// runPlan prints the size of every stage followed by one timing line per variant. The first failing variant aborts
// the run and its error is returned as-is. Result digests are only computed when debug logging is enabled.
func runPlan(out io.Writer, t *timer.Timer, logger *logrus.Logger, plan []stage) error {
	for _, s := range plan {
		if _, err := fmt.Fprintln(out, s.size); err != nil {
			return err
		}

		a, err := vector.Filled(s.size, fillValue)
		if err != nil {
			return err
		}

		b, err := vector.Filled(s.size, fillValue)
		if err != nil {
			return err
		}

		for _, v := range s.variants {
			log := logger.WithFields(logrus.Fields{
				"variant": v.name,
				"size":    s.size,
			})

			sum, err := timer.Func2E(t, v.name, v.fn)(a, b)
			if err != nil {
				log.WithError(err).Error("Addition failed")
				return err
			}

			if !logger.IsLevelEnabled(logrus.DebugLevel) {
				continue
			}

			digest, err := vector.Digest(sum)
			if err != nil {
				log.WithError(err).Warn("Unable to digest the result")
				continue
			}

			log.WithField("digest", fmt.Sprintf("%016x", digest)).Debug("Addition done")
		}
	}

	return nil
}
