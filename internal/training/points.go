package training

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/gocarina/gocsv"
)

// Class is a land cover class index.
type Class int

const (
	Urban       Class = 0
	Agriculture Class = 1
	Water       Class = 2
	Vegetation  Class = 3
)

// AllClasses lists every class in label order.
var AllClasses = []Class{Urban, Agriculture, Water, Vegetation}

func (c Class) String() string {
	switch c {
	case Urban:
		return "urban"
	case Agriculture:
		return "agriculture"
	case Water:
		return "water"
	case Vegetation:
		return "vegetation"
	}
	return "unknown"
}

// Point is one labeled training location. Random is the uniform draw used
// by the train/validation split; it is zero until AttachRandom runs.
type Point struct {
	Lon    float64 `csv:"longitude"`
	Lat    float64 `csv:"latitude"`
	Class  Class   `csv:"class"`
	Random float64 `csv:"random"`
}

// AttachRandom returns a copy of points with a fresh uniform [0,1) draw per
// point. The seed is explicit so splits are reproducible.
func AttachRandom(points []Point, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Point, len(points))
	for i, p := range points {
		p.Random = rng.Float64()
		out[i] = p
	}
	return out
}

// LoadPoints reads a labeled point CSV.
func LoadPoints(path string) ([]Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening points file: %w", err)
	}
	defer file.Close()

	var points []Point
	if err := gocsv.UnmarshalFile(file, &points); err != nil {
		return nil, fmt.Errorf("error unmarshalling points CSV: %w", err)
	}
	return points, nil
}

// SavePoints writes a labeled point CSV.
func SavePoints(path string, points []Point) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating points file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&points, file); err != nil {
		return fmt.Errorf("error writing points CSV: %w", err)
	}
	return nil
}
