package fields

// defaultSpecs are the ten FIR fields with labels and questions for every supported locale.
//
// Each structured pattern starts with a localized trigger word (e.g. "name", "नाम"), accepts an optional copula and
// captures up to the next comma, period or line break.
var defaultSpecs = []Spec{
	{
		Key:    FullName,
		Labels: map[string]string{
			"hi": "पूरा नाम",
			"en": "Full Name",
			"bn": "পূর্ণ নাম",
			"te": "పూర్తి పేరు",
			"mr": "पूर्ण नाव",
			"ta": "முழு பெயர்",
			"gu": "સંપૂર્ણ નામ",
			"ur": "مکمل نام",
			"kn": "ಪೂರ್ಣ ಹೆಸರು",
			"ml": "പൂർണ്ണ നാമം",
			"or": "ସମ୍ପୂର୍ଣ୍ଣ ନାମ",
			"pa": "ਪੂਰਾ ਨਾਮ",
			"as": "সম্পূর্ণ নাম",
		},
		Questions: map[string]string{
			"hi": "आपका पूरा नाम क्या है?",
			"en": "What is your full name?",
			"bn": "আপনার পূর্ণ নাম কি?",
			"te": "మీ పూర్తి పేరు ఏమిటి?",
			"mr": "तुमचे पूर्ण नाव काय आहे?",
			"ta": "உங்கள் முழு பெயர் என்ன?",
			"gu": "તમારું સંપૂર્ણ નામ શું છે?",
			"ur": "آپ کا مکمل نام کیا ہے؟",
			"kn": "ನಿಮ್ಮ ಪೂರ್ಣ ಹೆಸರು ಏನು?",
			"ml": "നിങ്ങളുടെ പൂർണ്ണ നാമം എന്താണ്?",
			"or": "ଆପଣଙ୍କର ସମ୍ପୂର୍ଣ୍ଣ ନାମ କଣ?",
			"pa": "ਤੁਹਾਡਾ ਪੂਰਾ ਨਾਮ ਕੀ ਹੈ?",
			"as": "আপোনাৰ সম্পূৰ্ণ নাম কি?",
		},
		Pattern: `(?i)(?:name|नाम|নাম|పేరు|नाव|பெயர்|નામ|نام|ಹೆಸರು|നാമം|ନାମ|ਨਾਮ)[\s:]*(?:is\b|है|কি|ఏమిటి|आहे|என்ன|છે|ہے|ಏನು|എന്താണ്|କଣ|ਹੈ|কি)?\s*([^,.\n]+)`,
	},
	{
		Key:    Age,
		Labels: map[string]string{
			"hi": "उम्र",
			"en": "Age",
			"bn": "বয়স",
			"te": "వయస్సు",
			"mr": "वय",
			"ta": "வயது",
			"gu": "ઉંમર",
			"ur": "عمر",
			"kn": "ವಯಸ್ಸು",
			"ml": "പ്രായം",
			"or": "ବୟସ",
			"pa": "ਉਮਰ",
			"as": "বয়স",
		},
		Questions: map[string]string{
			"hi": "आपकी उम्र क्या है?",
			"en": "What is your age?",
			"bn": "আপনার বয়স কত?",
			"te": "మీ వయస్సు ఎంత?",
			"mr": "तुमचे वय किती आहे?",
			"ta": "உங்கள் வயது என்ன?",
			"gu": "તમારી ઉંમર કેટલી છે?",
			"ur": "آپ کی عمر کتنی ہے؟",
			"kn": "ನಿಮ್ಮ ವಯಸ್ಸು ಎಷ್ಟು?",
			"ml": "നിങ്ങളുടെ പ്രായം എത്രയാണ്?",
			"or": "ଆପଣଙ୍କର ବୟସ କେତେ?",
			"pa": "ਤੁਹਾਡੀ ਉਮਰ ਕਿੰਨੀ ਹੈ?",
			"as": "আপোনাৰ বয়স কিমান?",
		},
		Pattern: `(?i)(?:age|उम्र|বয়স|వయస్సు|वय|வயது|ઉંમર|عمر|ವಯಸ್ಸು|പ്രായം|ବୟସ|ਉਮਰ)[\s:]*(?:is\b|है|কত|ఎంత|किती|என்ன|કેટલી|کتنی|ಎಷ್ಟು|എത്രയാണ്|କେତେ|ਕਿੰਨੀ|কিমান)?\s*(\d+)`,
	},
	{
		Key:    Address,
		Labels: map[string]string{
			"hi": "पता",
			"en": "Address",
			"bn": "ঠিকানা",
			"te": "చిరునామా",
			"mr": "पत्ता",
			"ta": "முகவரி",
			"gu": "સરનામું",
			"ur": "پتہ",
			"kn": "ವಿಳಾಸ",
			"ml": "വിലാസം",
			"or": "ଠିକଣା",
			"pa": "ਪਤਾ",
			"as": "ঠিকনা",
		},
		Questions: map[string]string{
			"hi": "आपका पता क्या है?",
			"en": "What is your address?",
			"bn": "আপনার ঠিকানা কি?",
			"te": "మీ చిరునామా ఏమిటి?",
			"mr": "तुमचा पत्ता काय आहे?",
			"ta": "உங்கள் முகவரி என்ன?",
			"gu": "તમારું સરનામું શું છે?",
			"ur": "آپ کا پتہ کیا ہے؟",
			"kn": "ನಿಮ್ಮ ವಿಳಾಸ ಏನು?",
			"ml": "നിങ്ങളുടെ വിലാസം എന്താണ്?",
			"or": "ଆପଣଙ୍କର ଠିକଣା କଣ?",
			"pa": "ਤੁਹਾਡਾ ਪਤਾ ਕੀ ਹੈ?",
			"as": "আপোনাৰ ঠিকনা কি?",
		},
		Pattern: `(?i)(?:address|पता|ঠিকানা|చిరునామా|पत्ता|முகவரி|સરનામું|پتہ|ವಿಳಾಸ|വിലാസം|ଠିକଣା|ਪਤਾ|ঠিকনা)[\s:]*(?:is\b|है|কি|ఏమిటి|आहे|என்ன|છે|ہے|ಏನು|എന്താണ്|କଣ|ਹੈ|কি)?\s*([^,.\n]+)`,
	},
	{
		Key:    DateOfBirth,
		Labels: map[string]string{
			"hi": "जन्म तिथि",
			"en": "Date of Birth",
			"bn": "জন্ম তারিখ",
			"te": "జన్మ తేదీ",
			"mr": "जन्म तारीख",
			"ta": "பிறந்த தேதி",
			"gu": "જન્મ તારીખ",
			"ur": "تاریخ پیدائش",
			"kn": "ಜನ್ಮ ದಿನಾಂಕ",
			"ml": "ജനന തീയതി",
			"or": "ଜନ୍ମ ତାରିଖ",
			"pa": "ਜਨਮ ਦਿਨ",
			"as": "জন্ম তাৰিখ",
		},
		Questions: map[string]string{
			"hi": "आपकी जन्म तिथि क्या है?",
			"en": "What is your date of birth?",
			"bn": "আপনার জন্ম তারিখ কি?",
			"te": "మీ జన్మ తేదీ ఏమిటి?",
			"mr": "तुमची जन्म तारीख काय आहे?",
			"ta": "உங்கள் பிறந்த தேதி என்ன?",
			"gu": "તમારી જન્મ તારીખ શું છે?",
			"ur": "آپ کی تاریخ پیدائش کیا ہے؟",
			"kn": "ನಿಮ್ಮ ಜನ್ಮ ದಿನಾಂಕ ಏನು?",
			"ml": "നിങ്ങളുടെ ജനന തീയതി എന്താണ്?",
			"or": "ଆପଣଙ୍କର ଜନ୍ମ ତାରିଖ କଣ?",
			"pa": "ਤੁਹਾਡਾ ਜਨਮ ਦਿਨ ਕੀ ਹੈ?",
			"as": "আপোনাৰ জন্ম তাৰিখ কি?",
		},
		Pattern: `(?i)(?:birth|जन्म|জন্ম|జన్మ|जन्म|பிறந்த|જન્મ|پیدائش|ಜನ್ಮ|ജനന|ଜନ୍ମ|ਜਨਮ)[\s:]*(?:date|तिथि|তারিখ|తేదీ|तारीख|தேதி|તારીખ|تاریخ|ದಿನಾಂಕ|തീയതി|ତାରିଖ|ਦਿਨ|তাৰিখ|is\b|है|কি|ఏమిటి|आहे|என்ன|છે|ہے|ಏನು|എന്താണ്|କଣ|ਹੈ|কি)?\s*([^,.\n]+)`,
	},
	{
		Key:    IncidentType,
		Labels: map[string]string{
			"hi": "घटना का प्रकार",
			"en": "Incident Type",
			"bn": "ঘটনার ধরন",
			"te": "సంఘటన రకం",
			"mr": "घटनेचा प्रकार",
			"ta": "சம்பவ வகை",
			"gu": "ઘટનાનો પ્રકાર",
			"ur": "واقعے کی قسم",
			"kn": "ಘಟನೆಯ ಪ್ರಕಾರ",
			"ml": "സംഭവത്തിന്റെ തരം",
			"or": "ଘଟଣାର ପ୍ରକାର",
			"pa": "ਘਟਨਾ ਦੀ ਕਿਸਮ",
			"as": "ঘটনাৰ প্ৰকাৰ",
		},
		Questions: map[string]string{
			"hi": "क्या प्रकार की घटना हुई है?",
			"en": "What type of incident occurred?",
			"bn": "কি ধরনের ঘটনা ঘটেছে?",
			"te": "ఎలాంటి సంఘటన జరిగింది?",
			"mr": "कोणत्या प्रकारची घटना घडली आहे?",
			"ta": "என்ன வகையான சம்பவம் நடந்தது?",
			"gu": "કેવા પ્રકારની ઘટના બની છે?",
			"ur": "کس قسم کا واقعہ پیش آیا؟",
			"kn": "ಯಾವ ರೀತಿಯ ಘಟನೆ ನಡೆದಿದೆ?",
			"ml": "എന്ത് തരത്തിലുള്ള സംഭവം നടന്നു?",
			"or": "କେଉଁ ପ୍ରକାରର ଘଟଣା ଘଟିଛି?",
			"pa": "ਕਿਸ ਕਿਸਮ ਦੀ ਘਟਨਾ ਹੋਈ ਹੈ?",
			"as": "কি ধৰণৰ ঘটনা সংঘটিত হৈছে?",
		},
		Pattern: `(?i)(?:incident|घटना|ঘটনা|సంఘటన|घटना|சம்பவம்|ઘટના|واقعہ|ಘಟನೆ|സംഭവം|ଘଟଣା|ਘਟਨਾ|ঘটনা)[\s:]*(?:type|प्रकार|ধরন|రకం|प्रकार|வகை|પ્રકાર|قسم|ಪ್ರಕಾರ|തരം|ପ୍ରକାର|ਕਿਸਮ|প্ৰকাৰ|is\b|है|কি|ఏమిటি|आहे|என்ன|છે|ہے|ಏನು|എന്താണ്|କଣ|ਹੈ|কি)?\s*([^,.\n]+)`,
	},
	{
		Key:    IncidentDescription,
		Labels: map[string]string{
			"hi": "घटना का विवरण",
			"en": "Incident Description",
			"bn": "ঘটনার বিবরণ",
			"te": "సంఘటన వివరణ",
			"mr": "घटनेचे वर्णन",
			"ta": "சம்பவ விளக்கம்",
			"gu": "ઘટનાનું વર્ણન",
			"ur": "واقعے کی تفصیل",
			"kn": "ಘಟನೆಯ ವಿವರಣೆ",
			"ml": "സംഭവത്തിന്റെ വിവരണം",
			"or": "ଘଟଣାର ବର୍ଣ୍ଣନା",
			"pa": "ਘਟਨਾ ਦਾ ਵਰਣਨ",
			"as": "ঘটনাৰ বিৱৰণ",
		},
		Questions: map[string]string{
			"hi": "कृपया घटना का विस्तार से वर्णन करें",
			"en": "Please describe the incident in detail",
			"bn": "অনুগ্রহ করে ঘটনার বিস্তারিত বর্ণনা দিন",
			"te": "దయచేసి సంఘటనను వివరంగా వర్ణించండి",
			"mr": "कृपया घटनेचे तपशीलवार वर्णन करा",
			"ta": "தயவுசெய்து சம்பவத்தை விரிவாக விளக்குங்கள்",
			"gu": "કૃપા કરીને ઘટનાનું વિગતવાર વર્ણન કરો",
			"ur": "براہ کرم واقعے کی تفصیل بیان کریں",
			"kn": "ದಯವಿಟ್ಟು ಘಟನೆಯನ್ನು ವಿವರವಾಗಿ ವರ್ಣಿಸಿ",
			"ml": "ദയവായി സംഭവത്തെ വിശദമായി വിവരിക്കുക",
			"or": "ଦୟାକରି ଘଟଣାର ବିସ୍ତୃତ ବର୍ଣ୍ଣନା କରନ୍ତୁ",
			"pa": "ਕਿਰਪਾ ਕਰਕੇ ਘਟਨਾ ਦਾ ਵਿਸਤਾਰ ਨਾਲ ਵਰਣਨ ਕਰੋ",
			"as": "অনুগ্ৰহ কৰি ঘটনাটোৰ বিশদ বিৱৰণ দিয়ক",
		},
		Pattern:  `(?is)(.+)`,
		FreeText: true,
	},
	{
		Key:    LocationOfIncident,
		Labels: map[string]string{
			"hi": "घटना का स्थान",
			"en": "Location of Incident",
			"bn": "ঘটনার স্থান",
			"te": "సంఘటన స్థలం",
			"mr": "घटनेचे ठिकाण",
			"ta": "சம்பவ இடம்",
			"gu": "ઘટનાનું સ્થળ",
			"ur": "واقعے کا مقام",
			"kn": "ಘಟನೆಯ ಸ್ಥಳ",
			"ml": "സംഭവ സ്ഥലം",
			"or": "ଘଟଣା ସ୍ଥାନ",
			"pa": "ਘਟਨਾ ਦਾ ਸਥਾਨ",
			"as": "ঘটনাৰ স্থান",
		},
		Questions: map[string]string{
			"hi": "घटना कहाँ हुई थी?",
			"en": "Where did the incident occur?",
			"bn": "ঘটনা কোথায় ঘটেছিল?",
			"te": "సంఘటన ఎక్కడ జరిగింది?",
			"mr": "घटना कुठे घडली होती?",
			"ta": "சம்பவம் எங்கே நடந்தது?",
			"gu": "ઘટના ક્યાં બની હતી?",
			"ur": "واقعہ کہاں پیش آیا؟",
			"kn": "ಘಟನೆ ಎಲ್ಲಿ ನಡೆಯಿತು?",
			"ml": "സംഭവം എവിടെ നടന്നു?",
			"or": "ଘଟଣା କେଉଁଠାରେ ଘଟିଥିଲା?",
			"pa": "ਘਟਨਾ ਕਿੱਥੇ ਹੋਈ ਸੀ?",
			"as": "ঘটনা কত সংঘটিত হৈছিল?",
		},
		Pattern: `(?i)(?:location|स्थान|স্থান|స్థలం|ठिकाण|இடம்|સ્થળ|مقام|ಸ್ಥಳ|സ്ഥലം|ସ୍ଥାନ|ਸਥਾਨ|স্থান|where|कहाँ|কোথায়|ఎక్కడ|कुठे|எங்கே|ક્યાં|کہاں|ಎಲ್ಲಿ|എവിടെ|କେଉଁଠାରେ|ਕਿੱਥੇ|ক'ত)[\s:]*(?:is\b|है|কি|ఏమిటి|आहे|என்ன|છે|ہے|ಏನು|എന്താണ്|କଣ|ਹੈ|কি|at\b|पर|তে|లో|वर|ல்|માં|میں|ಯಲ್ಲಿ|ൽ|ରେ|ਵਿੱਚ|ত)?\s*([^,.\n]+)`,
	},
	{
		Key:    DateTimeOfIncident,
		Labels: map[string]string{
			"hi": "घटना की तारीख और समय",
			"en": "Date & Time of Incident",
			"bn": "ঘটনার তারিখ ও সময়",
			"te": "సంఘటన తేదీ మరియు సమయం",
			"mr": "घटनेची तारीख आणि वेळ",
			"ta": "சம்பவ தேதி மற்றும் நேரம்",
			"gu": "ઘટનાની તારીખ અને સમય",
			"ur": "واقعے کی تاریخ اور وقت",
			"kn": "ಘಟನೆಯ ದಿನಾಂಕ ಮತ್ತು ಸಮಯ",
			"ml": "സംഭവ തീയതിയും സമയും",
			"or": "ଘଟଣାର ତାରିଖ ଏବଂ ସମୟ",
			"pa": "ਘਟਨਾ ਦੀ ਤਾਰੀਖ਼ ਅਤੇ ਸਮਾਂ",
			"as": "ঘটনাৰ তাৰিখ আৰু সময়",
		},
		Questions: map[string]string{
			"hi": "घटना कब हुई थी?",
			"en": "When did the incident occur?",
			"bn": "ঘটনা কখন ঘটেছিল?",
			"te": "సంఘటన ఎప్పుడు జరిగింది?",
			"mr": "घटना केव्हा घडली होती?",
			"ta": "சம்பவம் எப்போது நடந்தது?",
			"gu": "ઘટના ક્યારે બની હતી?",
			"ur": "واقعہ کب پیش آیا؟",
			"kn": "ಘಟನೆ ಯಾವಾಗ ನಡೆಯಿತು?",
			"ml": "സംഭവം എപ്പോൾ നടന്നു?",
			"or": "ଘଟଣା କେବେ ଘଟିଥିଲା?",
			"pa": "ਘਟਨਾ ਕਦੋਂ ਹੋਈ ਸੀ?",
			"as": "ঘটনা কেতিয়া সংঘটিত হৈছিল?",
		},
		Pattern: `(?i)(?:when|कब|কখন|ఎప్పుడు|केव्हा|எப்போது|ક્યારે|کب|ಯಾವಾಗ|എപ്പോൾ|କେବେ|ਕਦੋਂ|কেতিয়া|date|तारीख|তারিখ|తేదీ|तारीख|தேதி|તારીખ|تاریخ|ದಿನಾಂಕ|തീയതി|ତାରିଖ|ਤਾਰੀਖ਼|তাৰিখ|time|समय|সময়|సమయం|वेळ|நேரம்|સમય|وقت|ಸಮಯ|സമയം|ସମୟ|ਸਮਾਂ|সময়)[\s:]*(?:is\b|है|কি|ఏమিటి|आहे|என்ன|છે|ہے|ಏನು|എന്താണ്|କଣ|ਹੈ|কি)?\s*([^,.\n]+)`,
	},
	{
		Key:    Witnesses,
		Labels: map[string]string{
			"hi": "गवाह",
			"en": "Witnesses",
			"bn": "সাক্ষী",
			"te": "సాక్షులు",
			"mr": "साक्षीदार",
			"ta": "சாட்சிகள்",
			"gu": "સાક્ષીઓ",
			"ur": "گواہ",
			"kn": "ಸಾಕ್ಷಿಗಳು",
			"ml": "സാക്ഷികൾ",
			"or": "ସାକ୍ଷୀ",
			"pa": "ਗਵਾਹ",
			"as": "সাক্ষী",
		},
		Questions: map[string]string{
			"hi": "क्या कोई गवाह थे?",
			"en": "Were there any witnesses?",
			"bn": "কোনো সাক্ষী ছিল কি?",
			"te": "ఏదైనా సాక్షులు ఉన్నారా?",
			"mr": "काही साक्षीदार होते का?",
			"ta": "ஏதேனும் சாட்சிகள் இருந்தார்களா?",
			"gu": "કોઈ સાક્ષીઓ હતા?",
			"ur": "کیا کوئی گواہ تھے؟",
			"kn": "ಯಾವುದೇ ಸಾಕ್ಷಿಗಳು ಇದ್ದರೆ?",
			"ml": "എന്തെങ്കിലും സാക്ഷികൾ ഉണ്ടായിരുന്നോ?",
			"or": "କୌଣସି ସାକ୍ଷୀ ଥିଲେ କି?",
			"pa": "ਕੀ ਕੋਈ ਗਵਾਹ ਸਨ?",
			"as": "কোনো সাক্ষী আছিল নেকি?",
		},
		Pattern: `(?i)(?:witness(?:es)?|गवाह|সাক্ষী|సాక్షులు|साक्षीदार|சாட்சிகள்|સાક્ષીઓ|گواہ|ಸಾಕ್ಷಿಗಳು|സാക്ഷികൾ|ସାକ୍ଷୀ|ਗਵਾਹ|সাক্ষী)[\s:]*(?:were|थे|ছিল|ఉన్నారు|होते|இருந்தார்கள்|હતા|تھے|ಇದ್ದರು|ഉണ്ടായിരുന്നു|ଥିଲେ|ਸਨ|আছিল|is\b|है|কি|ఏమిటి|आहे|என்ன|છે|ہے|ಏನು|എന്താണ്|କଣ|ਹੈ|কি)?\s*([^,.\n]+)`,
	},
	{
		Key:    AdditionalInformation,
		Labels: map[string]string{
			"hi": "अतिरिक्त जानकारी",
			"en": "Additional Information",
			"bn": "অতিরিক্ত তথ্য",
			"te": "అదనపు సమాచారం",
			"mr": "अतिरिक्त माहिती",
			"ta": "கூடுதல் தகவல்",
			"gu": "વધારાની માહિતી",
			"ur": "اضافی معلومات",
			"kn": "ಹೆಚ್ಚುವರಿ ಮಾಹಿತಿ",
			"ml": "അധിക വിവരങ്ങൾ",
			"or": "ଅତିରିକ୍ତ ସୂଚନା",
			"pa": "ਵਾਧੂ ਜਾਣਕਾਰੀ",
			"as": "অতিৰিক্ত তথ্য",
		},
		Questions: map[string]string{
			"hi": "कोई अतिरिक्त जानकारी?",
			"en": "Any additional information?",
			"bn": "কোনো অতিরিক্ত তথ্য?",
			"te": "ఏదైనా అదనపు సమాచారం?",
			"mr": "काही अतिरिक्त माहिती?",
			"ta": "ஏதேனும் கூடுதல் தகவல்?",
			"gu": "કોઈ વધારાની માહિતી?",
			"ur": "کوئی اضافی معلومات؟",
			"kn": "ಯಾವುದೇ ಹೆಚ್ಚುವರಿ ಮಾಹಿತಿ?",
			"ml": "എന്തെങ്കിലും അധിക വിവരങ്ങൾ?",
			"or": "କୌଣସି ଅତିରିକ୍ତ ସୂଚନା?",
			"pa": "ਕੋਈ ਵਾਧੂ ਜਾਣਕਾਰੀ?",
			"as": "কোনো অতিৰিক্ত তথ্য?",
		},
		Pattern:  `(?is)(.+)`,
		FreeText: true,
	},
}
