package analysis

// Emotion is the label of an emotion category.
type Emotion string

const (
	Happy     Emotion = "happy"
	Sad       Emotion = "sad"
	Anxious   Emotion = "anxious"
	Angry     Emotion = "angry"
	Calm      Emotion = "calm"
	Stressed  Emotion = "stressed"
	Motivated Emotion = "motivated"

	// Neutral is the fallback label. Analyze never returns it as a category always wins.
	Neutral Emotion = "neutral"
)

func (e Emotion) String() string {
	return string(e)
}

// Positive reports whether the category raises the emotional score.
func (e Emotion) Positive() bool {
	return e == Happy || e == Calm || e == Motivated
}

// EmotionCategory associates an emotion with the keywords revealing it.
type EmotionCategory struct {
	Emotion  Emotion
	Keywords []string
}

// The declaration order matters: ties go to the first category.
var emotionCategories = []EmotionCategory{
	{Happy, []string{"happy", "joy", "excited", "grateful", "content", "cheerful", "elated", "blissful"}},
	{Sad, []string{"sad", "down", "depressed", "lonely", "hopeless", "empty", "grief", "melancholy"}},
	{Anxious, []string{"anxious", "worried", "nervous", "panic", "fearful", "tense", "restless", "uneasy"}},
	{Angry, []string{"angry", "furious", "irritated", "frustrated", "rage", "annoyed", "livid", "bitter"}},
	{Calm, []string{"calm", "peaceful", "serene", "relaxed", "tranquil", "centered", "balanced", "zen"}},
	{Stressed, []string{"stressed", "overwhelmed", "pressure", "burden", "exhausted", "burned out", "frazzled"}},
	{Motivated, []string{"motivated", "inspired", "determined", "focused", "driven", "ambitious", "energized"}},
}

var crisisPhrases = []string{
	"suicide", "kill myself", "end it all", "worthless", "better off dead",
	"no point", "can't go on", "hurt myself", "self harm",
}

var positiveIndicators = []string{
	"grateful", "accomplished", "progress", "better", "improving", "healing",
	"hopeful", "optimistic", "blessed", "thankful", "proud", "achieved",
}

var stressIndicators = []string{
	"can't sleep", "insomnia", "headache", "racing thoughts", "can't focus",
	"heart racing", "sweating", "shaking", "dizzy", "nauseous",
}

// DreamSymbol is a recurring dream motif with its usual interpretation.
type DreamSymbol struct {
	Symbol  string
	Meaning string
}

func (s DreamSymbol) String() string {
	return s.Symbol + ": " + s.Meaning
}

var dreamSymbols = []DreamSymbol{
	{"water", "Represents emotions and the subconscious mind"},
	{"flying", "Suggests freedom, ambition, or desire to escape limitations"},
	{"falling", "May indicate feelings of losing control or anxiety"},
	{"animals", "Often represent instincts or aspects of personality"},
	{"house", "Symbolizes the self or different aspects of your life"},
	{"death", "Usually represents transformation or endings leading to new beginnings"},
	{"chase", "May indicate avoidance of something in waking life"},
	{"lost", "Could represent feeling directionless or confused"},
}

// Emotions returns the emotion categories in declaration order.
func Emotions() []Emotion {
	var result []Emotion
	for _, category := range emotionCategories {
		result = append(result, category.Emotion)
	}
	return result
}

// Categories returns a copy of the emotion lexicon.
func Categories() []EmotionCategory {
	result := make([]EmotionCategory, 0, len(emotionCategories))
	for _, category := range emotionCategories {
		result = append(result, EmotionCategory{
			Emotion:  category.Emotion,
			Keywords: append([]string(nil), category.Keywords...),
		})
	}
	return result
}

// DreamSymbols returns a copy of the dream lexicon.
func DreamSymbols() []DreamSymbol {
	return append([]DreamSymbol(nil), dreamSymbols...)
}
