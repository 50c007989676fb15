// Package geo resolves free-text place names to 3-letter location codes.
package geo

// aliases maps normalized place-name tokens to IATA location codes. Keys are
// already in the form produced by normalizeKey. Values cover the cities this
// feed actually talks about: Iranian origins, Canadian destinations and the
// usual layover hubs. Loaded once; never mutated after init.
var aliases = map[string]string{
	// Tehran
	"تهران": "THR", "طهران": "THR", "tehran": "THR", "thr": "THR",
	"ika": "IKA", "imam": "IKA", "imam khomeini": "IKA", "فرودگاه امام": "IKA",
	// Mashhad
	"مشهد": "MHD", "mashhad": "MHD", "mhd": "MHD",
	// Shiraz
	"شیراز": "SYZ", "shiraz": "SYZ", "syz": "SYZ",
	// Isfahan
	"اصفهان": "IFN", "isfahan": "IFN", "esfahan": "IFN", "ifn": "IFN",
	// Tabriz
	"تبریز": "TBZ", "tabriz": "TBZ", "tbz": "TBZ",
	// Toronto
	"تورنتو": "YYZ", "toronto": "YYZ", "yyz": "YYZ", "pearson": "YYZ",
	// Vancouver
	"ونکوور": "YVR", "vancouver": "YVR", "yvr": "YVR",
	// Montreal
	"مونترال": "YUL", "montreal": "YUL", "yul": "YUL", "trudeau": "YUL",
	// Calgary
	"کلگری": "YYC", "calgary": "YYC", "yyc": "YYC",
	// Edmonton
	"ادمونتون": "YEG", "edmonton": "YEG", "yeg": "YEG",
	// Ottawa
	"اتاوا": "YOW", "ottawa": "YOW", "yow": "YOW",
	// Layover hubs
	"استانبول": "IST", "istanbul": "IST", "ist": "IST",
	"دبی": "DXB", "dubai": "DXB", "dxb": "DXB",
	"دوحه": "DOH", "doha": "DOH", "doh": "DOH",
	"فرانکفورت": "FRA", "frankfurt": "FRA", "fra": "FRA",
	"لندن": "LHR", "london": "LHR", "heathrow": "LHR", "lhr": "LHR",
	"وین": "VIE", "vienna": "VIE", "vie": "VIE",
	"مسقط": "MCT", "muscat": "MCT", "mct": "MCT",
}
