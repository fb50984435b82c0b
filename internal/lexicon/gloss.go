package lexicon

// gloss maps everyday and literary words to short English meanings.
var gloss = map[string]string{
	// Pronouns
	"நான்": "I", "நாம்": "we (inclusive)", "நாங்கள்": "we", "எங்கள்": "our", "என்": "my",
	"நீ": "you (singular)", "நீங்கள்": "you (plural)", "உங்கள்": "your",
	"அவன்": "he", "அவள்": "she", "அவர்": "they/he/she (respectful)", "அவர்கள்": "they",
	"இவன்": "this person (male)", "இவள்": "this person (female)", "இவர்": "this person (respectful)",
	"யார்": "who", "எது": "which/what", "என்ன": "what", "எப்படி": "how", "ஏன்": "why",
	"எங்கே": "where", "எப்போது": "when", "எவ்வளவு": "how much",

	// Time words
	"இன்று": "today", "நேற்று": "yesterday", "நாளை": "tomorrow",
	"மறுநாள்": "day after tomorrow", "நேற்று முன்தினம்": "day before yesterday",
	"காலை": "morning", "மதியம்": "afternoon", "மாலை": "evening", "இரவு": "night",
	"இப்போது": "now", "பிறகு": "later", "முன்": "front/before", "பின்": "back/after",
	"எப்போதும்": "always", "சில நேரங்களில்": "sometimes", "அரிதாக": "rarely",

	// Food & Eating
	"சாப்பாடு": "food", "உணவு": "food/meal", "உண்ண": "to eat",
	"சாப்பிட்டேன்": "I ate", "சாப்பிட்டான்": "he ate", "சாப்பிட்டாள்": "she ate", "சாப்பிட்டார்": "ate (respectful)",
	"சாப்பிடுவேன்": "will eat", "சாப்பிடுகிறேன்": "am eating", "சாப்பிடுகிறான்": "is eating (he)",
	"குடித்தேன்": "I drank", "குடிக்கிறேன்": "am drinking", "குடிப்பேன்": "will drink",
	"சமைத்தேன்": "I cooked", "சமைக்கிறேன்": "am cooking", "சமைப்பேன்": "will cook",
	"தண்ணீர்": "water", "பால்": "milk", "சாதம்": "cooked rice", "காய்கறி": "vegetable",

	// Movement verbs
	"செல்ல": "to go", "சென்றேன்": "I went", "சென்றான்": "he went", "சென்றாள்": "she went",
	"போ": "go", "போக": "to go", "போகிறேன்": "am going", "போகிறான்": "is going (he)",
	"போகிறாள்": "is going (she)", "போகிறார்": "is going (respectful)", "போகிறார்கள்": "are going",
	"போனேன்": "I went", "போனான்": "he went", "போனாள்": "she went", "போனார்": "went (respectful)",
	"போவேன்": "will go", "போவான்": "will go (he)", "போவாள்": "will go (she)", "போவார்": "will go (respectful)",
	"வா": "come", "வர": "to come", "வருகிறேன்": "am coming", "வருகிறான்": "is coming (he)",
	"வருகிறாள்": "is coming (she)", "வருகிறார்": "is coming (respectful)",
	"வந்தேன்": "I came", "வந்தான்": "he came", "வந்தாள்": "she came", "வந்தார்": "came (respectful)",
	"வருவேன்": "will come", "வருவான்": "will come (he)", "வருவாள்": "will come (she)",
	"செல்கிறேன்": "am going", "செல்வேன்": "will go", "செல்லாமல்": "without going",
	"ஓடினேன்": "I ran", "ஓடுகிறேன்": "am running", "ஓடுவேன்": "will run",
	"ஓடுகிறான்": "is running (he)", "ஓடுகிறாள்": "is running (she)",
	"நடந்தேன்": "I walked", "நடக்கிறேன்": "am walking", "நடப்பேன்": "will walk",
	"நடக்கிறது": "is happening/walking", "நடந்தது": "happened",

	// Common verbs with subject variations
	"பெய்யுது": "is raining", "பெய்கிறது": "is raining", "பெய்யும்": "will rain",
	"பெய்தது": "rained", "பெய்ய": "to rain",
	"இருக்கிறேன்": "am (there)", "இருக்கிறான்": "is (there - he)", "இருக்கிறாள்": "is (there - she)",
	"இருக்கிறது": "is (there - thing)", "இருக்கிறார்": "is (there - respectful)",
	"இருந்தேன்": "was (I)", "இருந்தான்": "was (he)", "இருந்தாள்": "was (she)", "இருந்தது": "was (thing)",
	"இருப்பேன்": "will be", "இருப்பான்": "will be (he)", "இருப்பாள்": "will be (she)",

	// Common nouns with cases
	"பையன்": "boy", "பையன்கள்": "boys", "பெண்": "girl", "பெண்கள்": "girls",
	"மனிதன்": "man", "மனிதர்கள்": "people", "பெண்மணி": "woman",
	"குழந்தை": "child", "குழந்தைகள்": "children", "குட்டி": "small child/baby",
	"மாணவன்": "student (male)", "மாணவி": "student (female)", "மாணவர்கள்": "students",
	"ஆசிரியர்": "teacher", "தலைவர்": "leader/head", "நண்பன்": "friend (male)",
	"தோழன்": "friend/companion (male)", "தோழி": "friend (female)",

	// Body parts
	"தலை": "head", "கை": "hand/arm", "கால்": "leg/foot", "கண்": "eye", "கண்கள்": "eyes",
	"காது": "ear", "மூக்கு": "nose", "வாய்": "mouth", "பல்": "tooth", "நாக்கு": "tongue",
	"முகம்": "face", "மூளை": "brain", "இதயம்": "heart", "வயிறு": "stomach",

	// Animals
	"நாய்": "dog", "பூனை": "cat", "பசு": "cow", "குதிரை": "horse", "யானை": "elephant",
	"சிங்கம்": "lion", "புலி": "tiger", "குரங்கு": "monkey", "பறவை": "bird",
	"மீன்": "fish", "பாம்பு": "snake", "கோழி": "chicken", "ஆடு": "goat/sheep",

	// Food items
	"சோறு": "rice/food", "இட்லி": "idli", "தோசை": "dosa",
	"சாம்பார்": "sambar", "ரசம்": "rasam", "கூட்டு": "kootu/curry",
	"பொரியல்": "poriyal/stir-fry", "வடை": "vada", "பொங்கல்": "pongal",
	"அப்பளம்": "papad", "ஊறுகாய்": "pickle", "இனிப்பு": "sweet/dessert",
	"காபி": "coffee", "டீ": "tea",
	"சாறு": "juice", "பழம்": "fruit",

	// Places
	"பள்ளி": "school", "பள்ளிக்கு": "to school", "பள்ளியில்": "at school",
	"கல்லூரி": "college", "பல்கலைக்கழகம்": "university",
	"அலுவலகம்": "office", "அலுவலகத்தில்": "at office", "அலுவலகத்திற்கு": "to office",
	"வீடு": "house/home", "வீட்டில்": "at home", "வீட்டிற்கு": "to home",
	"கடை": "shop", "சந்தை": "market", "மருத்துவமனை": "hospital",
	"கோவில்": "temple", "தேவாலயம்": "church", "மசூதி": "mosque",
	"பூங்கா": "park", "கடற்கரை": "beach", "மலை": "mountain",

	// Actions & Verbs (Daily Use)
	"பார்த்தேன்": "I saw/watched", "பார்க்கிறேன்": "am seeing", "பார்ப்பேன்": "will see",
	"படித்தேன்": "I read/studied", "படிக்கிறேன்": "am reading", "படிப்பேன்": "will read",
	"எழுதினேன்": "I wrote", "எழுதுகிறேன்": "am writing", "எழுதுவேன்": "will write",
	"பேசினேன்": "I spoke", "பேசுகிறேன்": "am speaking", "பேசுவேன்": "will speak",
	"விளையாடினேன்": "I played", "விளையாடுகிறேன்": "am playing", "விளையாடுவேன்": "will play",
	"தூங்கினேன்": "I slept", "தூங்குகிறேன்": "am sleeping", "தூங்குவேன்": "will sleep",
	"எழுந்தேன்": "I woke up", "எழுகிறேன்": "am waking up", "எழுவேன்": "will wake up",
	"வேலை செய்தேன்": "I worked", "வேலை செய்கிறேன்": "am working", "வேலை செய்வேன்": "will work",
	"கற்றேன்": "I learned", "கற்கிறேன்": "am learning", "கற்பேன்": "will learn",
	"கொடுத்தேன்": "I gave", "கொடுக்கிறேன்": "am giving", "கொடுப்பேன்": "will give",
	"எடுத்தேன்": "I took", "எடுக்கிறேன்": "am taking", "எடுப்பேன்": "will take",
	"வாங்கினேன்": "I bought", "வாங்குகிறேன்": "am buying", "வாங்குவேன்": "will buy",
	"விற்றேன்": "I sold", "விற்கிறேன்": "am selling", "விற்பேன்": "will sell",

	// More Common Daily Verbs
	"செய்": "do/make", "செய்தேன்": "I did", "செய்கிறேன்": "am doing", "செய்வேன்": "will do",
	"செய்கிறதே": "is doing", "செய்யாமல்": "without doing", "செய்து": "having done",
	"வீழ்ந்தேன்": "I fell", "வீழ்கிறேன்": "am falling", "வீழ்வேன்": "will fall",
	"வீழ்ந்திடாமல்": "without falling", "வீழ்ந்திடாதே": "don't fall",
	"தாங்கினேன்": "I bore/endured", "தாங்குகிறேன்": "am bearing", "தாங்குவேன்": "will bear",
	"தாங்கிக்கொள்ள": "to bear/endure", "தாங்கிக்கொண்டு": "bearing/enduring",
	"உதவினேன்": "I helped", "உதவுகிறேன்": "am helping", "உதவுவேன்": "will help",
	"கேட்டேன்": "I asked/heard", "கேட்கிறேன்": "am asking/hearing", "கேட்பேன்": "will ask/hear",
	"சொன்னேன்": "I said", "சொல்கிறேன்": "am saying", "சொல்வேன்": "will say",
	"நினைத்தேன்": "I thought", "நினைக்கிறேன்": "am thinking", "நினைப்பேன்": "will think",
	"விரும்பினேன்": "I wanted/liked", "விரும்புகிறேன்": "am wanting", "விரும்புவேன்": "will want",
	"முயற்சித்தேன்": "I tried", "முயற்சிக்கிறேன்": "am trying", "முயற்சிப்பேன்": "will try",
	"நம்பினேன்": "I believed", "நம்புகிறேன்": "am believing", "நம்புவேன்": "will believe",
	"மறந்தேன்": "I forgot", "மறக்கிறேன்": "am forgetting", "மறப்பேன்": "will forget",
	"நிறுத்தினேன்": "I stopped", "நிறுத்துகிறேன்": "am stopping", "நிறுத்துவேன்": "will stop",
	"தொடர்ந்தேன்": "I continued", "தொடர்கிறேன்": "am continuing", "தொடர்வேன்": "will continue",

	// Common words & Adjectives
	"ஆம்": "yes", "இல்லை": "no", "சரி": "okay/correct", "தவறு": "wrong/mistake",
	"நல்ல": "good", "கெட்ட": "bad", "பெரிய": "big", "சிறிய": "small",
	"புதிய": "new", "பழைய": "old", "இளம்": "young", "வயதான": "old (age)",
	"வேகமாக": "fast", "மெதுவாக": "slow", "அதிகம்": "more", "குறைவு": "less",
	"உயரம்": "tall/height", "தாழ்வு": "short/low",
	"அழகான": "beautiful", "அழகு": "beauty", "நேர்மை": "honesty", "உண்மை": "truth",
	"பொய்": "lie/false", "தெளிவு": "clarity", "சுத்தம்": "cleanliness", "தூய்மை": "purity",
	"எளிது": "easy", "எளிமை": "simplicity", "கடினம்": "difficult", "சிரமம்": "difficulty",

	// Daily Needs & Activities (Extended)
	"சாப்பிடுகிறாள்": "is eating (she)", "சாப்பிடுகிறது": "is eating (it)",
	"குடிக்கிறான்": "is drinking (he)", "குடிக்கிறாள்": "is drinking (she)",
	"கழுவினேன்": "I washed", "கழுவுகிறேன்": "am washing", "கழுவுவேன்": "will wash",
	"துடைத்தேன்": "I cleaned/wiped", "துடைக்கிறேன்": "am cleaning", "துடைப்பேன்": "will clean",
	"வாழ்ந்தேன்": "I lived", "வாழ்கிறேன்": "am living", "வாழ்வேன்": "will live",
	"வாழ்கிறான்": "is living (he)", "வாழ்கிறாள்": "is living (she)",
	"குதித்தேன்": "I jumped", "குதிக்கிறேன்": "am jumping", "குதிப்பேன்": "will jump",
	"உட்கார்ந்தேன்": "I sat", "உட்காருகிறேன்": "am sitting", "உட்காருவேன்": "will sit",
	"நின்றேன்": "I stood", "நிற்கிறேன்": "am standing", "நிற்பேன்": "will stand",
	"படுத்தேன்": "I lay down", "படுக்கிறேன்": "am lying down", "படுப்பேன்": "will lie down",
	"தூங்குகிறான்": "is sleeping (he)", "தூங்குகிறாள்": "is sleeping (she)",
	"விளையாடுகிறான்": "is playing (he)", "விளையாடுகிறாள்": "is playing (she)",
	"படிக்கிறான்": "is reading (he)", "படிக்கிறாள்": "is reading (she)",
	"எழுதுகிறான்": "is writing (he)", "எழுதுகிறாள்": "is writing (she)",
	"பேசுகிறான்": "is speaking (he)", "பேசுகிறாள்": "is speaking (she)",

	// Emotions & States (Basic)
	"சந்தோஷம்": "joy/happiness", "மகிழ்ச்சி": "happiness/joy", "வருத்தம்": "regret/sadness", "கோபம்": "anger",
	"அச்சம்": "fear", "ஆச்சரியம்": "wonder/surprise", "காதல்": "love", "வெறுப்பு": "hatred",
	"நோய்": "disease/sickness", "ஆரோக்கியம்": "health", "நன்றாக": "well", "மோசமாக": "badly",
	"அமைதி": "peace/calm", "அன்பு": "love", "பாசம்": "affection",
	"பொறாமை": "jealousy", "நம்பிக்கை": "hope/trust", "ஏமாற்றம்": "disappointment",
	"மகிழ்வு": "delight", "துக்கம்": "sorrow/sadness", "கவலை": "worry/anxiety", "பயம்": "fear",

	// Greetings & Common Phrases
	"வணக்கம்": "greetings/hello", "வாருங்கள்": "welcome/come", "போகலாம்": "let's go",
	"வாங்க": "come (informal)", "போங்க": "go (formal)", "இருங்கள்": "stay/be",
	"தயவுசெய்து": "please", "நன்றி": "gratitude", "மன்னிக்கவும்": "sorry/excuse me",
	"பரவாயில்லை": "it's okay/no problem", "சரிதான்": "that's right", "தெரியாது": "don't know",
	"தெரியும்": "know/known", "புரியுது": "understand", "புரியல": "don't understand",

	// Literature words
	"அறம்": "virtue/righteousness", "பொருள்": "wealth/meaning", "இன்பம்": "pleasure",
	"கல்": "education/learning", "கல்வி": "education/learning", "அறிவு": "knowledge/wisdom",
	"வேந்தன்": "king/ruler", "செல்வம்": "wealth",
	"நட்பு": "friendship", "போர்": "war",
	"துன்பம்": "suffering",

	// Colors
	"சிவப்பு": "red", "நீலம்": "blue", "பச்சை": "green", "மஞ்சள்": "yellow",
	"வெள்ளை": "white", "கருப்பு": "black", "சாம்பல்": "grey", "பழுப்பு": "brown",
	"ஆரஞ்சு": "orange", "இளஞ்சிவப்பு": "pink", "ஊதா": "purple",

	// Weather & Nature
	"வானம்": "sky", "மேகம்": "cloud", "மழை": "rain", "காற்று": "wind",
	"வெயில்": "sun/sunshine", "குளிர்": "cold", "வெப்பம்": "heat",
	"மரம்": "tree", "பூ": "flower", "கடல்": "sea",
	"ஆறு": "six", "ஏரி": "lake", "வயல்": "field",

	// Numbers
	"ஒன்று": "one", "இரண்டு": "two", "மூன்று": "three", "நான்கு": "four", "ஐந்து": "five",
	"ஏழு": "seven", "எட்டு": "eight", "ஒன்பது": "nine", "பத்து": "ten",

	// Family
	"அம்மா": "mother", "அப்பா": "father", "தாய்": "mother", "தந்தை": "father",
	"அண்ணா": "elder brother", "அக்கா": "elder sister", "தம்பி": "younger brother",
	"தங்கை": "younger sister", "மகன்": "son", "மகள்": "daughter",

	// Conjunctions & Prepositions
	"மற்றும்": "and", "அல்லது": "or", "ஆனால்": "but", "என்பதால்": "because",
	"அதனால்": "therefore", "உடன்": "with", "இல்லாமல்": "without",
	"மேல்": "above/on", "கீழ்": "below/under", "உள்ளே": "inside", "வெளியே": "outside",
	"அருகில்": "near", "தூரம்": "far",
	"எனவே": "therefore", "ஏனெனில்": "because", "இருப்பினும்": "however",
	"ஆகையால்": "hence", "மேலும்": "moreover/also", "அதேபோல்": "likewise",
	"க்கு": "to (suffix)", "இல்": "in/at (suffix)", "ஆல்": "by (suffix)",

	// Possessives & Demonstratives
	"இது": "this", "அது": "that", "என்னுடைய": "my", "உன்னுடைய": "your",
	"அவனுடைய": "his", "அவளுடைய": "her", "நம்முடைய": "our",
	"இவை": "these", "அவை": "those", "எல்லாம்": "all/everything",
	"சில": "some/few", "பல": "many", "அனைத்தும்": "everything",

	// Time & Place
	"பின்பு": "later/then", "முன்பு": "before/earlier",
	"வாரம்": "week", "மாதம்": "month", "வருடம்": "year",
	"இங்கே": "here", "அங்கே": "there",
	"ஊர்": "town/village",

	// Emotions & Mental States (Extended) - Sentiment Words
	"ஆர்வம்": "interest/enthusiasm", "உற்சாகம்": "excitement", "சோர்வு": "tiredness/fatigue",
	"அலுப்பு": "boredom/weariness", "மரியாதை": "respect",
	"தைரியம்": "courage/bravery", "வெட்கம்": "shyness/shame",
	"சிரிப்பு": "laughter/smile", "அழுகை": "crying/tears", "கண்ணீர்": "tears",
	"இனிமை": "sweetness/pleasantness", "கசப்பு": "bitterness", "வலி": "pain",
	"நலம்": "wellness",
	"வெற்றி": "success/victory", "தோல்வி": "failure/defeat", "வளர்ச்சி": "growth",
	"இழப்பு": "loss", "கஷ்டம்": "difficulty/hardship",
	"மகிழ்ந்து": "happily", "வருந்தி": "sadly", "கோபமாக": "angrily",

	// Mental & Physical Burden
	"பாரம்": "burden/weight", "சுமை": "load/burden", "பளு": "weight/burden",
	"மனபாரம்": "mental burden/stress", "மனசுமை": "mental burden",
	"மனபாரங்கள்": "mental burdens/stresses", "மனபாரங்களால்": "due to mental burdens",
	"சுமைகள்": "burdens/loads", "பாரங்கள்": "weights/burdens",
	"மனஅழுத்தம்": "stress/mental pressure", "மன இறுக்கம்": "mental tension",

	// Abstract Concepts
	"நீதி": "justice",
	"தர்மம்": "righteousness/duty",
	"நன்மை": "goodness/benefit", "தீமை": "evil/harm",
	"புத்தி": "intelligence/wisdom", "ஞானம்": "wisdom/enlightenment",
}
