package constants

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

const SemitonesPerOctave = 12

// letters per octave, not scale length (a built scale repeats the tonic)
const DegreesPerOctave = 7

const MaxMidiKey = 127

const (
	DefaultVelocity = 100
	DefaultChannel  = 0
	DefaultLogLevel = logrus.WarnLevel
)

func GetLogLevel() logrus.Level {
	raw := os.Getenv("THEORY_LOG_LEVEL")
	if raw == "" {
		return DefaultLogLevel
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return DefaultLogLevel
	}
	return level
}

func GetDefaultVelocity() uint8 {
	return getUint8("THEORY_VELOCITY", 1, MaxMidiKey, DefaultVelocity)
}

func GetDefaultChannel() uint8 {
	return getUint8("THEORY_CHANNEL", 0, 15, DefaultChannel)
}

func getUint8(name string, min, max int, fallback uint8) uint8 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		return fallback
	}
	return uint8(v)
}
