package config

import "fmt"

// MatchingConfig holds every tuned constant of the matching pipeline. The
// values are empirical; changing one changes which queries match.
type MatchingConfig struct {
	Strict      StrictConfig      `yaml:"strict"`
	Thresholds  ThresholdConfig   `yaml:"thresholds"`
	Shape       ShapeConfig       `yaml:"shape"`
	Boost       BoostConfig       `yaml:"boost"`
	Containment ContainmentConfig `yaml:"containment"`
	Fuzzy       FuzzyConfig       `yaml:"fuzzy"`
	Chapter     ChapterConfig     `yaml:"chapter"`

	// Records whose raw text starts with one of these are stubs and are not
	// scored on their text.
	PlaceholderMarkers []string `yaml:"placeholder_markers"`
}

// StrictConfig governs the modern-sentence / short-query mode.
type StrictConfig struct {
	Threshold        int `yaml:"threshold"`          // acceptance threshold in strict mode
	MinScore         int `yaml:"min_score"`          // raw score below this is vetoed
	MaxShortWords    int `yaml:"max_short_words"`    // queries this short are always strict
	MinSentenceWords int `yaml:"min_sentence_words"` // lexical cues need at least this many words
}

// ThresholdConfig holds the length-banded base thresholds.
type ThresholdConfig struct {
	LongRunes   int `yaml:"long_runes"`
	MediumRunes int `yaml:"medium_runes"`
	Long        int `yaml:"long"`
	Medium      int `yaml:"medium"`
	Short       int `yaml:"short"`
}

// ShapeConfig defines the structural shape checks.
type ShapeConfig struct {
	AphorismLines    int `yaml:"aphorism_lines"`
	AphorismMinWords int `yaml:"aphorism_min_words"`
	AphorismMaxWords int `yaml:"aphorism_max_words"`
	NarrativeWords   int `yaml:"narrative_words"` // more words than this is narrative
	NarrativeLines   int `yaml:"narrative_lines"` // more lines than this is narrative
}

// BoostConfig holds the structural boost multipliers.
type BoostConfig struct {
	Aphorism           float64 `yaml:"aphorism"`
	AphorismThreshold  int     `yaml:"aphorism_threshold"`
	Narrative          float64 `yaml:"narrative"`
	NarrativeThreshold int     `yaml:"narrative_threshold"`
	Mismatch           float64 `yaml:"mismatch"`
}

// ContainmentConfig scores substring matches.
type ContainmentConfig struct {
	FullLength    float64 `yaml:"full_length"`
	FullScore     int     `yaml:"full_score"`
	PartialLength float64 `yaml:"partial_length"`
	PartialScore  int     `yaml:"partial_score"`
	MinOverlap    float64 `yaml:"min_overlap"`
	OverlapScore  int     `yaml:"overlap_score"`
	DecayScale    float64 `yaml:"decay_scale"`
}

// FuzzyConfig validates approximate scores against word overlap.
type FuzzyConfig struct {
	High             int     `yaml:"high"`
	MinLengthRatio   float64 `yaml:"min_length_ratio"`
	ShortWords       int     `yaml:"short_words"`
	ShortHighOverlap float64 `yaml:"short_high_overlap"`
	LongHighOverlap  float64 `yaml:"long_high_overlap"`
	ShortMinOverlap  float64 `yaml:"short_min_overlap"`

	Band           int     `yaml:"band"`
	HighLowOverlap float64 `yaml:"high_low_overlap"`
	HighRescue     float64 `yaml:"high_rescue"`
	HighMidOverlap float64 `yaml:"high_mid_overlap"`
	HighPenalty    float64 `yaml:"high_penalty"`
	MedLowOverlap  float64 `yaml:"med_low_overlap"`
	MedRescue      float64 `yaml:"med_rescue"`
	MedMidOverlap  float64 `yaml:"med_mid_overlap"`
	MedPenalty     float64 `yaml:"med_penalty"`
}

// ChapterConfig scores queries against grouping labels.
type ChapterConfig struct {
	MaxQueryRunes int `yaml:"max_query_runes"`
	Floor         int `yaml:"floor"`
}

// DefaultMatchingConfig returns the tuned production constants.
func DefaultMatchingConfig() MatchingConfig {
	return MatchingConfig{
		Strict: StrictConfig{
			Threshold:        98,
			MinScore:         95,
			MaxShortWords:    3,
			MinSentenceWords: 2,
		},
		Thresholds: ThresholdConfig{
			LongRunes:   100,
			MediumRunes: 50,
			Long:        50,
			Medium:      48,
			Short:       50,
		},
		Shape: ShapeConfig{
			AphorismLines:    2,
			AphorismMinWords: 6,
			AphorismMaxWords: 10,
			NarrativeWords:   10,
			NarrativeLines:   2,
		},
		Boost: BoostConfig{
			Aphorism:           1.35,
			AphorismThreshold:  40,
			Narrative:          1.30,
			NarrativeThreshold: 42,
			Mismatch:           0.75,
		},
		Containment: ContainmentConfig{
			FullLength:    0.8,
			FullScore:     95,
			PartialLength: 0.5,
			PartialScore:  85,
			MinOverlap:    0.5,
			OverlapScore:  80,
			DecayScale:    70,
		},
		Fuzzy: FuzzyConfig{
			High:             95,
			MinLengthRatio:   0.6,
			ShortWords:       3,
			ShortHighOverlap: 1.0,
			LongHighOverlap:  0.6,
			ShortMinOverlap:  0.7,
			Band:             85,
			HighLowOverlap:   0.4,
			HighRescue:       1.5,
			HighMidOverlap:   0.6,
			HighPenalty:      0.85,
			MedLowOverlap:    0.5,
			MedRescue:        1.2,
			MedMidOverlap:    0.7,
			MedPenalty:       0.65,
		},
		Chapter: ChapterConfig{
			MaxQueryRunes: 30,
			Floor:         70,
		},
		PlaceholderMarkers: []string{"திருக்குறள்", "[திருக்குறள்"},
	}
}

// Validate rejects scores outside 0..100 and non-positive multipliers.
func (m MatchingConfig) Validate() error {
	scores := map[string]int{
		"strict.threshold":           m.Strict.Threshold,
		"strict.min_score":           m.Strict.MinScore,
		"thresholds.long":            m.Thresholds.Long,
		"thresholds.medium":          m.Thresholds.Medium,
		"thresholds.short":           m.Thresholds.Short,
		"boost.aphorism_threshold":   m.Boost.AphorismThreshold,
		"boost.narrative_threshold":  m.Boost.NarrativeThreshold,
		"containment.full_score":     m.Containment.FullScore,
		"containment.partial_score":  m.Containment.PartialScore,
		"containment.overlap_score":  m.Containment.OverlapScore,
		"fuzzy.high":                 m.Fuzzy.High,
		"fuzzy.band":                 m.Fuzzy.Band,
		"chapter.floor":              m.Chapter.Floor,
	}
	for name, v := range scores {
		if v < 0 || v > 100 {
			return fmt.Errorf("%s must be within 0..100, got %d", name, v)
		}
	}

	multipliers := map[string]float64{
		"boost.aphorism":  m.Boost.Aphorism,
		"boost.narrative": m.Boost.Narrative,
		"boost.mismatch":  m.Boost.Mismatch,
	}
	for name, v := range multipliers {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, v)
		}
	}

	if m.Shape.AphorismMinWords > m.Shape.AphorismMaxWords {
		return fmt.Errorf("shape.aphorism_min_words exceeds aphorism_max_words")
	}
	return nil
}
