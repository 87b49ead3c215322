package locale

import "fmt"

// extracted holds the full-text extraction summary per locale. "%d" is the number of filled fields.
var extracted = map[string]string{
	English: "Successfully extracted information for %d field(s)",
	"hi":    "%d फील्ड(s) के लिए जानकारी सफलतापूर्वक निकाली गई",
	"bn":    "%d ক্ষেত্রের জন্য তথ্য সফলভাবে বের করা হয়েছে",
	"te":    "%d ఫీల్డ్(లకు) సమాచారం విజయవంతంగా సేకరించబడింది",
	"mr":    "%d क्षेत्रासाठी माहिती यशस्वीरित्या काढली गेली",
	"ta":    "%d புலத்திற்கான தகவல் வெற்றிகரமாக பிரித்தெடுக்கப்பட்டது",
	"gu":    "%d ફીલ્ડ(ઓ) માટે માહિતી સફળતાપૂર્વક કાઢવામાં આવી",
	"ur":    "%d فیلڈ(ز) کے لیے معلومات کامیابی سے نکالی گئی",
	"kn":    "%d ಕ್ಷೇತ್ರ(ಗಳ) ಮಾಹಿತಿಯನ್ನು ಯಶಸ್ವಿಯಾಗಿ ಹೊರತೆಗೆಯಲಾಗಿದೆ",
	"ml":    "%d ഫീൽഡ്(കൾ) വിവരങ്ങൾ വിജയകരമായി എക്സ്ട്രാക്റ്റ് ചെയ്തു",
	"or":    "%d କ୍ଷେତ୍ର(ଗୁଡ଼ିକ) ପାଇଁ ସୂଚନା ସଫଳଭାବେ ବାହାର କରାଯାଇଛି",
	"pa":    "%d ਫੀਲਡ(ਾਂ) ਲਈ ਜਾਣਕਾਰੀ ਸਫਲਤਾਪੂਰਵਕ ਕੱਢੀ ਗਈ",
	"as":    "%d ক্ষেত্ৰৰ বাবে তথ্য সফলভাৱে উলিওৱা হৈছে",
}

var nothingExtracted = map[string]string{
	English: "No extractable information found",
	"hi":    "कोई निकालने योग्य जानकारी नहीं मिली",
	"bn":    "কোনো বের করার যোগ্য তথ্য পাওয়া যায়নি",
	"te":    "వెలికితీయదగిన సమాచారం కనుగొనబడలేదు",
	"mr":    "काढण्यासारखी माहिती सापडली नाही",
	"ta":    "பிரித்தெடுக்கக்கூடிய தகவல் எதுவும் கிடைக்கவில்லை",
	"gu":    "કોઈ કાઢી શકાય તેવી માહિતી મળી નથી",
	"ur":    "کوئی قابل نکالنے والی معلومات نہیں ملیں",
	"kn":    "ಯಾವುದೇ ಹೊರತೆಗೆಯಬಹುದಾದ ಮಾಹಿತಿ ಕಂಡುಬಂದಿಲ್ಲ",
	"ml":    "എക്സ്ട്രാക്റ്റ് ചെയ്യാവുന്ന വിവരങ്ങളൊന്നും കണ്ടെത്താനായില്ല",
	"or":    "କୌଣସି ବାହାର କରିବାଯୋଗ୍ୟ ସୂଚନା ମିଳିଲା ନାହିଁ",
	"pa":    "ਕੋਈ ਕੱਢਣਯੋਗ ਜਾਣਕਾਰੀ ਨਹੀਂ ਮਿਲੀ",
	"as":    "কোনো উলিয়াব পৰা তথ্য পোৱা নগল",
}

// ExtractionSummary describes the outcome of a full-text extraction of count fields in the language of code.
// Unknown locales get the English message.
func ExtractionSummary(code string, count int) string {
	if count <= 0 {
		if msg, ok := nothingExtracted[code]; ok {
			return msg
		}
		return nothingExtracted[English]
	}
	format, ok := extracted[code]
	if !ok {
		format = extracted[English]
	}
	return fmt.Sprintf(format, count)
}
