package sentiment

const (
	// mean intensity change of booster and dampener words
	BIncr = 0.293
	BDecr = -0.293

	// intensity change of an ALL CAPS word among mixed case words
	CIncr   = 0.733
	NScalar = -0.74

	// normalization constant, approximates the max expected sum
	Alpha = 15

	exclamationIncr  = 0.292
	maxExclamations  = 4
	questionIncr     = 0.18
	maxQuestionBoost = 0.96

	butBefore = 0.5
	butAfter  = 1.5
)

var negations = map[string]bool{
	"aint": true, "arent": true, "cannot": true, "cant": true, "couldnt": true, "darent": true, "didnt": true, "doesnt": true,
	"ain't": true, "aren't": true, "can't": true, "couldn't": true, "daren't": true, "didn't": true, "doesn't": true,
	"dont": true, "hadnt": true, "hasnt": true, "havent": true, "isnt": true, "mightnt": true, "mustnt": true, "neither": true,
	"don't": true, "hadn't": true, "hasn't": true, "haven't": true, "isn't": true, "mightn't": true, "mustn't": true,
	"neednt": true, "needn't": true, "never": true, "none": true, "nope": true, "nor": true, "not": true, "nothing": true, "nowhere": true,
	"oughtnt": true, "shant": true, "shouldnt": true, "uhuh": true, "wasnt": true, "werent": true,
	"oughtn't": true, "shan't": true, "shouldn't": true, "uh-uh": true, "wasn't": true, "weren't": true,
	"without": true, "wont": true, "wouldnt": true, "won't": true, "wouldn't": true, "rarely": true, "seldom": true, "despite": true,
}

// degree adverbs
var boosters = map[string]float64{
	"absolutely": BIncr, "amazingly": BIncr, "awfully": BIncr, "completely": BIncr, "considerable": BIncr,
	"considerably": BIncr, "decidedly": BIncr, "deeply": BIncr, "effing": BIncr, "enormous": BIncr, "enormously": BIncr,
	"entirely": BIncr, "especially": BIncr, "exceptional": BIncr, "exceptionally": BIncr, "extreme": BIncr, "extremely": BIncr,
	"fabulously": BIncr, "flipping": BIncr, "flippin": BIncr, "frackin": BIncr, "fracking": BIncr,
	"fricking": BIncr, "frickin": BIncr, "frigging": BIncr, "friggin": BIncr, "fully": BIncr,
	"fuckin": BIncr, "fucking": BIncr, "fuggin": BIncr, "fugging": BIncr,
	"greatly": BIncr, "hella": BIncr, "highly": BIncr, "hugely": BIncr,
	"incredible": BIncr, "incredibly": BIncr, "intensely": BIncr,
	"major": BIncr, "majorly": BIncr, "more": BIncr, "most": BIncr, "particularly": BIncr,
	"purely": BIncr, "quite": BIncr, "really": BIncr, "remarkably": BIncr,
	"so": BIncr, "substantially": BIncr,
	"thoroughly": BIncr, "total": BIncr, "totally": BIncr, "tremendous": BIncr, "tremendously": BIncr,
	"uber": BIncr, "unbelievably": BIncr, "unusually": BIncr, "utter": BIncr, "utterly": BIncr,
	"very":   BIncr,
	"almost": BDecr, "barely": BDecr, "hardly": BDecr, "just enough": BDecr,
	"kind of": BDecr, "kinda": BDecr, "kindof": BDecr, "kind-of": BDecr,
	"less": BDecr, "little": BDecr, "marginal": BDecr, "marginally": BDecr,
	"occasional": BDecr, "occasionally": BDecr, "partly": BDecr,
	"scarce": BDecr, "scarcely": BDecr, "slight": BDecr, "slightly": BDecr, "somewhat": BDecr,
	"sort of": BDecr, "sorta": BDecr, "sortof": BDecr, "sort-of": BDecr,
}

// idioms whose words are in the lexicon but mean something else together
var specialCaseIdioms = map[string]float64{
	"the shit": 3, "the bomb": 3, "bad ass": 1.5, "badass": 1.5, "bus stop": 0.0,
	"yeah right": -2, "kiss of death": -1.5, "to die for": 3,
	"beating heart": 3.1, "broken heart": -2.9,
}
