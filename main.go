package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecheney/profile"

	flag "github.com/docker/docker/pkg/mflag"

	"github.com/wlattner/furia/data"
	"github.com/wlattner/furia/furia"
)

var (
	// data/model files
	dataFile    = flag.String([]string{"d", "-data"}, "", "training or prediction example data (csv)")
	predictFile = flag.String([]string{"-predict"}, "", "file to output predictions; presence switches to predict mode")
	modelFile   = flag.String([]string{"m", "-model"}, "furia.model", "file to load/save the fitted model")
	classFirst  = flag.Bool([]string{"-class_first"}, true, "class label is the first csv column rather than the last")

	// model params, matching the published option table
	folds          = flag.Int([]string{"F", "-folds"}, 3, "reduced-error-pruning folds; one prunes, rest grow")
	minNo          = flag.Float64([]string{"N", "-min_no"}, 2.0, "minimum covered-positive weight during growth")
	optimizations  = flag.Int([]string{"O", "-optimizations"}, 2, "number of optimization passes")
	seed           = flag.Int64([]string{"S", "-seed"}, 1, "rng seed for stratification/shuffle")
	checkErrorRate = flag.Bool([]string{"E", "-no_check_error_rate"}, false, "disable the >=0.5 covered-error stop criterion")
	uncovAction    = flag.String([]string{"s", "-uncov_action"}, "STRETCH", "action on uncovered instances: STRETCH, APRIORI, or REJECT")
	tNorm          = flag.String([]string{"p", "-tnorm"}, "PROD", "t-norm for antecedent aggregation: PROD or MIN")

	// runtime params
	debug      = flag.Bool([]string{"D", "-debug"}, false, "diagnostic logging during fit")
	runProfile = flag.Bool([]string{"-profile"}, false, "cpu profile")
)

func main() {
	flag.Parse()

	if *runProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	if *dataFile == "" {
		fmt.Fprintf(os.Stderr, "Usage of furia:\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(*dataFile)
	if err != nil {
		fatal("error opening data file", err.Error())
	}
	defer f.Close()

	parseOpt := data.DefaultParseOptions()
	parseOpt.ClassFirst = *classFirst
	instSet, err := data.ParseCSV(f, parseOpt)
	if err != nil {
		fatal("error parsing input data", err.Error())
	}

	if *predictFile != "" {
		mf, err := os.Open(*modelFile)
		if err != nil {
			fatal("error opening model file", err.Error())
		}
		defer mf.Close()

		m, err := furia.Load(mf)
		if err != nil {
			fatal("error loading model", err.Error())
		}

		o, err := os.Create(*predictFile)
		if err != nil {
			fatal("error creating", *predictFile, err.Error())
		}
		defer o.Close()

		if err := writePredictions(o, m, instSet); err != nil {
			fatal("error writing predictions", err.Error())
		}
		return
	}

	uncov, err := parseUncovAction(*uncovAction)
	if err != nil {
		fatal("invalid uncov_action", err.Error())
	}
	tn, err := parseTNorm(*tNorm)
	if err != nil {
		fatal("invalid tnorm", err.Error())
	}

	m, err := furia.Fit(instSet,
		furia.Folds(*folds),
		furia.MinNo(*minNo),
		furia.Optimizations(*optimizations),
		furia.Seed(uint64(*seed)),
		furia.CheckErrorRate(!*checkErrorRate),
		furia.WithUncovAction(uncov),
		furia.WithTNorm(tn),
		furia.Debug(*debug),
	)
	if err != nil {
		fatal("error fitting model", err.Error())
	}

	o, err := os.Create(*modelFile)
	if err != nil {
		fatal("error saving model", err.Error())
	}
	defer o.Close()

	if err := m.Save(o); err != nil {
		fatal("error saving model", err.Error())
	}

	m.Report(os.Stderr)
}

func parseUncovAction(s string) (furia.UncovAction, error) {
	switch strings.ToUpper(s) {
	case "STRETCH":
		return furia.Stretch, nil
	case "APRIORI":
		return furia.Apriori, nil
	case "REJECT":
		return furia.Reject, nil
	default:
		return furia.Stretch, fmt.Errorf("unknown uncov_action %q", s)
	}
}

func parseTNorm(s string) (furia.TNormKind, error) {
	switch strings.ToUpper(s) {
	case "PROD":
		return furia.Prod, nil
	case "MIN":
		return furia.Min, nil
	default:
		return furia.Prod, fmt.Errorf("unknown tnorm %q", s)
	}
}

func fatal(a ...interface{}) {
	fmt.Fprintln(os.Stderr, a...)
	os.Exit(1)
}

func writePredictions(w *os.File, m *furia.Model, instSet data.InstanceSet) error {
	for _, inst := range instSet.Instances {
		d := m.PredictDistribution(inst)
		labels := make([]string, len(d))
		for i, p := range d {
			labels[i] = fmt.Sprintf("%s:%.4f", m.ClassAttr.ValueName(i), p)
		}
		if _, err := fmt.Fprintln(w, strings.Join(labels, ",")); err != nil {
			return err
		}
	}
	return nil
}
