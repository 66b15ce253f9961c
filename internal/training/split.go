package training

// Default split thresholds, kept exactly as the workflow has always run
// them: training takes random < 0.7 and validation takes random >= 0.3, so
// points drawing into [0.3, 0.7) are fed to both sides. Split reports the
// overlap instead of correcting it; callers decide whether to warn.
const (
	TrainBelow   = 0.7
	ValidAtLeast = 0.3
)

// SplitReport summarizes one train/validation split.
type SplitReport struct {
	Training   int
	Validation int
	Overlap    int
}

// Overlapping reports whether the threshold pair double-assigns a band of
// random values.
func Overlapping(trainBelow, validAtLeast float64) bool {
	return validAtLeast < trainBelow
}

// Split partitions points by their attached random value.
func Split(points []Point, trainBelow, validAtLeast float64) (training, validation []Point, report SplitReport) {
	for _, p := range points {
		inTraining := p.Random < trainBelow
		inValidation := p.Random >= validAtLeast
		if inTraining {
			training = append(training, p)
		}
		if inValidation {
			validation = append(validation, p)
		}
		if inTraining && inValidation {
			report.Overlap++
		}
	}
	report.Training = len(training)
	report.Validation = len(validation)
	return training, validation, report
}
