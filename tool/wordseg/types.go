package wordseg

const (
	// SegmentationMode returns every segmentation path as json.
	SegmentationMode = "segmentation"
	// KeywordDetectionMode returns the dictionary words found in the content.
	KeywordDetectionMode = "keyword-detection"
)

const (
	// AllWords returns all distinct dictionary words in order of appearance.
	AllWords = "all-words"
	// FirstWord returns the first dictionary word only.
	FirstWord = "first-word"
)

// Input is the decoded tool input.
type Input struct {
	Content     string `mapstructure:"content"`
	OutputModel string `mapstructure:"output_model"`
}
