package lexicon

// DefaultTables returns a fresh copy of the built-in tables. Callers may
// modify the result before passing it to New.
func DefaultTables() Tables {
	g := make(map[string]string, len(gloss))
	for k, v := range gloss {
		g[k] = v
	}
	return Tables{
		VerbEndings: []string{
			// present
			"கிறேன்", "கிறாய்", "கிறார்", "கிறோம்", "கிறீர்", "கிறார்கள்",
			"கிறது", "கின்றன",
			// future
			"வேன்", "வாய்", "வார்", "வோம்", "வீர்", "வார்கள்",
			// past
			"தேன்", "தாய்", "தார்", "தோம்", "தீர்", "தார்கள்",
			"ந்தேன்", "ந்தாய்", "ந்தார்", "ந்தோம்",
			"ட்டேன்", "ட்டாய்", "ட்டார்", "ட்டோம்",
			"க்கிறேன்", "ப்பேன்", "ப்போம்",
		},
		TimeWords: []string{
			"இன்று", "நேற்று", "நாளை", "இன்றைக்கு", "நேற்றைக்கு",
			"காலையில்", "மாலையில்", "இரவில்", "மதியம்",
			"இப்போது", "அப்போது", "பிறகு", "முன்பு",
		},
		ModernNouns: []string{
			"புத்தகம்", "பள்ளி", "கார்", "பேருந்து", "ரயில்",
			"கணினி", "போன்", "டிவி", "பணம்", "ஊர்",
			"வீட்டில்", "கடை", "மார்க்கெட்", "ஆபீஸ்", "வேலை",
		},
		NarrativeNames: []string{
			"இராமன்", "சீதை", "லட்சுமணன்", "இராவணன்", "அனுமன்", "தசரதன்",
			"பரதன்", "சுக்ரீவன்", "விபீஷணன்", "கைகேயி", "வாலி",
			"கும்பகர்ணன்", "இந்திரஜித்", "ஜடாயு", "மாரீசன்",
		},
		Positive: []string{
			"மகிழ்ச்சி", "சந்தோஷம்", "மகிழ்வு", "இன்பம்", "அன்பு", "பாசம்",
			"நம்பிக்கை", "தைரியம்", "ஆர்வம்", "உற்சாகம்", "அமைதி", "நன்மை",
			"நல்ல", "அழகான", "சிறந்த", "மரியாதை", "நன்றி", "நட்பு",
			"சிரிப்பு", "மகிழ்", "சந்தோஷ", "இனிமை", "வெற்றி", "வளர்ச்சி",
			"ஆரோக்கியம்", "நலம்", "செல்வம்", "புகழ்", "பெருமை", "ஆனந்தம்",
			"மகிழ்ந்து", "சந்தோஷமாக", "நன்றாக", "அருமை", "சிறப்பு",
			"அற்புதம்", "இனிய", "நல்வாழ்வு", "சுகம்", "இன்", "பயன்",
			"ஊக்கம்", "ஆதரவு", "பாராட்டு", "வாழ்த்து", "போற்று",
		},
		Negative: []string{
			"துக்கம்", "கவலை", "பயம்", "கோபம்", "வருத்தம்", "ஏமாற்றம்",
			"வெறுப்பு", "பொறாமை", "சோர்வு", "அலுப்பு", "வெட்கம்", "துன்பம்",
			"மனபாரம்", "மனசுமை", "மனஅழுத்தம்", "தீமை", "கெட்ட", "மோசமாக",
			"வலி", "நோய்", "தோல்வி", "இழப்பு", "கஷ்டம்", "சிரமம்",
			"அழுகை", "கண்ணீர்", "கசப்பு", "வேதனை", "வருந்தி", "கோபமாக",
			"பாரம்", "சுமை", "பளு", "மன இறுக்கம்", "அச்சம்", "பீதி",
			"வெறுக்", "பகை", "எதிர்", "கெடு", "அழி",
			"நஷ்டம்", "தண்டனை", "குற்றம்", "பாவம்", "தவறு",
		},
		Neutral: []string{
			"செய்", "போ", "வா", "இரு", "பார்", "கேள்", "சொல்", "எழுது",
			"படி", "சாப்பிடு", "குடி", "தூங்கு", "நட", "ஓடு", "இன்று",
			"நேற்று", "நாளை", "இப்போது", "பிறகு", "முன்பு",
		},
		Gloss: g,
		Themes: []Rule{
			{Keywords: []string{"சாப்பாடு", "சாப்பிட"}, Label: "உணவு (Food)"},
			{Keywords: []string{"பள்ளி", "படி", "கல்வி"}, Label: "கல்வி (Education)"},
			{Keywords: []string{"அலுவலகம்", "வேலை"}, Label: "வேலை (Work)"},
			{Keywords: []string{"காலை", "மாலை", "இரவு"}, Label: "நேரம் (Time)"},
			{Keywords: []string{"காதல்", "அன்பு"}, Label: "காதல் (Love)"},
			{Keywords: []string{"நட்பு", "நண்பன்"}, Label: "நட்பு (Friendship)"},
			{Keywords: []string{"அறம்", "நீதி"}, Label: "அறநெறி (Virtue)"},
			{Keywords: []string{"செல்வம்", "பணம்"}, Label: "செல்வம் (Wealth)"},
			{Keywords: []string{"இன்பம்", "மகிழ்ச்சி"}, Label: "இன்பம் (Joy)"},
			{Keywords: []string{"துன்பம்", "வருத்தம்"}, Label: "துன்பம் (Sorrow)"},
			{Keywords: []string{"செல்", "வர", "போ"}, Label: "அன்றாட செயல்கள் (Daily activities)"},
		},
		DefaultTheme: "பொதுவான தமிழ் உரை (General Tamil text)",
		Morals: []Rule{
			{Keywords: []string{"அறம்"}, Label: "நீதியான வாழ்க்கை வாழ வேண்டும்"},
			{Keywords: []string{"கல்"}, Label: "கல்வியே மனிதனின் உண்மையான செல்வம்"},
			{Keywords: []string{"காதல்"}, Label: "உண்மையான அன்பு தூய்மையானது"},
			{Keywords: []string{"நன்றி"}, Label: "உதவி செய்தவரை மறக்கக்கூடாது"},
			{Keywords: []string{"நட்பு"}, Label: "நல்ல நண்பர்கள் வாழ்வின் அரும்பொருள்"},
			{Keywords: []string{"பொறாமை"}, Label: "பொறாமை தீய குணம், தவிர்க்க வேண்டும்"},
			{Keywords: []string{"பொய்"}, Label: "வாய்மையே வெல்லும், பொய் தோற்கும்"},
			{Keywords: []string{"செல்வம்"}, Label: "பொருள் சேர்த்து பயன்படுத்த வேண்டும்"},
			{Keywords: []string{"கோபம்"}, Label: "கோபம் மனிதனின் எதிரி"},
			{Keywords: []string{"பொறுமை"}, Label: "பொறுமை கொண்டு செயல்பட வேண்டும்"},
		},
		DefaultMoral: "தமிழ் இலக்கியம் வாழ்க்கைக்கு வழிகாட்டும் ஒளி",
		Literature: []Rule{
			{Keywords: []string{"கல்", "கற்", "அறம்", "நன்றி"}, MaxRunes: 150, Label: "திருக்குறள் (அனுமானம்)"},
			{Keywords: []string{"இராமன்", "சீதை", "கண்ணகி", "கோவலன்", "மாதவி"}, Label: "காப்பியம் (சிலப்பதிகாரம்/கம்பராமாயணம்)"},
			{Keywords: []string{"விரும்பு", "செய்", "கூடாது"}, MaxRunes: 40, Label: "ஆத்திசூடி அல்லது நாலடியார் (அனுமானம்)"},
			{Keywords: []string{"யாதும்", "யாவரும்", "ஊரே", "நாடு", "மக்கள்"}, Label: "சங்க இலக்கியம் (புறநானூறு/எட்டுத்தொகை)"},
			{Keywords: []string{"சிவன்", "பெருமான்", "கடவுள்", "திருவடி"}, Label: "பக்தி இலக்கியம் (தேவாரம்/திருவாசகம்)"},
		},
		DefaultSource: "தமிழ் இலக்கியம் (பொது)",
	}
}
