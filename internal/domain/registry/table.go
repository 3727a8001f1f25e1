package registry

import "github.com/damon-houk/listing-currency-service/internal/domain/entity"

// builtin lists every supported currency. When several currencies share a
// symbol, the one listed first is the most common for that symbol on the
// catalog and is used as the tie-break default.
var builtin = []entity.CurrencyMeta{
	// Display currencies first.
	{Code: "USD", Symbols: []string{"US$", "$"}, Name: "US Dollar", Region: entity.RegionAmericas, MinorUnits: 2,
		Aliases: []string{"usa", "united states", "america", "american"},
		Words:   []string{"us dollar", "dollar"}},
	{Code: "EUR", Symbols: []string{"€"}, Name: "Euro", Region: entity.RegionEurope, MinorUnits: 2,
		Aliases: []string{"europe", "european", "germany", "german", "france", "french", "italy", "italian",
			"spain", "spanish", "netherlands", "dutch", "belgium", "belgian", "austria", "austrian",
			"portugal", "portuguese", "finland", "finnish", "ireland", "irish", "greece", "greek"},
		Words: []string{"euro"}},
	{Code: "ILS", Symbols: []string{"₪"}, Name: "Israeli Shekel", Region: entity.RegionMiddleEast, MinorUnits: 2,
		Aliases: []string{"israel", "israeli"},
		Words:   []string{"israeli shekel", "shekel", "nis"}},

	// Asia
	{Code: "CNY", Symbols: []string{"¥", "￥", "元"}, Name: "Chinese Yuan", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"china", "chinese", "prc", "taobao", "tmall", "xiaomi", "huawei"},
		Words:   []string{"chinese yuan", "yuan", "rmb", "renminbi"}},
	{Code: "JPY", Symbols: []string{"¥", "￥", "円"}, Name: "Japanese Yen", Region: entity.RegionAsia, MinorUnits: 0,
		Aliases: []string{"japan", "japanese", "rakuten"},
		Words:   []string{"japanese yen", "yen"}},
	{Code: "KRW", Symbols: []string{"₩", "원"}, Name: "South Korean Won", Region: entity.RegionAsia, MinorUnits: 0,
		Aliases: []string{"korea", "korean", "south korea"},
		Words:   []string{"korean won"}},
	{Code: "INR", Symbols: []string{"₹", "Rs.", "Rs"}, Name: "Indian Rupee", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"india", "indian", "flipkart"},
		Words:   []string{"indian rupee", "rupee"}},
	{Code: "THB", Symbols: []string{"฿"}, Name: "Thai Baht", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"thailand", "thai"},
		Words:   []string{"thai baht", "baht"}},
	{Code: "VND", Symbols: []string{"₫"}, Name: "Vietnamese Dong", Region: entity.RegionAsia, MinorUnits: 0,
		Aliases: []string{"vietnam", "viet nam", "vietnamese"},
		Words:   []string{"vietnamese dong", "dong"}},
	{Code: "IDR", Symbols: []string{"Rp"}, Name: "Indonesian Rupiah", Region: entity.RegionAsia, MinorUnits: 0,
		Aliases: []string{"indonesia", "indonesian"},
		Words:   []string{"indonesian rupiah", "rupiah"}},
	{Code: "PHP", Symbols: []string{"₱"}, Name: "Philippine Peso", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"philippines", "philippine", "filipino"},
		Words:   []string{"philippine peso"}},
	{Code: "MYR", Symbols: []string{"RM"}, Name: "Malaysian Ringgit", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"malaysia", "malaysian"},
		Words:   []string{"malaysian ringgit", "ringgit"}},
	{Code: "SGD", Symbols: []string{"S$", "$"}, Name: "Singapore Dollar", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"singapore", "singaporean"},
		Words:   []string{"singapore dollar"}},
	{Code: "HKD", Symbols: []string{"HK$", "$"}, Name: "Hong Kong Dollar", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"hong kong", "hongkong"},
		Words:   []string{"hong kong dollar"}},
	{Code: "TWD", Symbols: []string{"NT$"}, Name: "Taiwan Dollar", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"taiwan", "taiwanese"},
		Words:   []string{"taiwan dollar"}},
	{Code: "PKR", Symbols: []string{"Rs.", "Rs"}, Name: "Pakistani Rupee", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"pakistan", "pakistani"},
		Words:   []string{"pakistani rupee"}},
	{Code: "BDT", Symbols: []string{"৳"}, Name: "Bangladeshi Taka", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"bangladesh", "bangladeshi"},
		Words:   []string{"taka"}},
	{Code: "LKR", Symbols: []string{"Rs.", "Rs"}, Name: "Sri Lankan Rupee", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"sri lanka", "sri lankan"},
		Words:   []string{"sri lankan rupee"}},
	{Code: "NPR", Symbols: []string{"Rs.", "Rs"}, Name: "Nepalese Rupee", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"nepal", "nepalese"},
		Words:   []string{"nepalese rupee"}},
	{Code: "MMK", Name: "Myanmar Kyat", Region: entity.RegionAsia, MinorUnits: 0,
		Aliases: []string{"myanmar", "burma", "burmese"},
		Words:   []string{"kyat"}},
	{Code: "KHR", Symbols: []string{"៛"}, Name: "Cambodian Riel", Region: entity.RegionAsia, MinorUnits: 0,
		Aliases: []string{"cambodia", "cambodian"},
		Words:   []string{"riel"}},
	{Code: "LAK", Symbols: []string{"₭"}, Name: "Lao Kip", Region: entity.RegionAsia, MinorUnits: 0,
		Aliases: []string{"laos", "laotian"},
		Words:   []string{"kip"}},
	{Code: "BND", Symbols: []string{"B$"}, Name: "Brunei Dollar", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"brunei"},
		Words:   []string{"brunei dollar"}},
	{Code: "MOP", Symbols: []string{"MOP$"}, Name: "Macanese Pataca", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"macau", "macao"},
		Words:   []string{"pataca"}},
	{Code: "MNT", Symbols: []string{"₮"}, Name: "Mongolian Tugrik", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"mongolia", "mongolian"},
		Words:   []string{"tugrik"}},
	{Code: "KZT", Symbols: []string{"₸"}, Name: "Kazakhstani Tenge", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"kazakhstan", "kazakh"},
		Words:   []string{"tenge"}},
	{Code: "UZS", Name: "Uzbekistani Som", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"uzbekistan", "uzbek"}},
	{Code: "KGS", Name: "Kyrgyzstani Som", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"kyrgyzstan", "kyrgyz"}},
	{Code: "TJS", Name: "Tajikistani Somoni", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"tajikistan", "tajik"},
		Words:   []string{"somoni"}},
	{Code: "AFN", Symbols: []string{"؋"}, Name: "Afghan Afghani", Region: entity.RegionAsia, MinorUnits: 2,
		Aliases: []string{"afghanistan", "afghan"},
		Words:   []string{"afghani"}},

	// Middle East
	{Code: "AED", Symbols: []string{"د.إ"}, Name: "UAE Dirham", Region: entity.RegionMiddleEast, MinorUnits: 2,
		Aliases: []string{"uae", "united arab emirates", "emirati", "dubai"},
		Words:   []string{"uae dirham", "dirham"}},
	{Code: "SAR", Symbols: []string{"﷼"}, Name: "Saudi Riyal", Region: entity.RegionMiddleEast, MinorUnits: 2,
		Aliases: []string{"saudi arabia", "saudi"},
		Words:   []string{"saudi riyal", "riyal"}},
	{Code: "QAR", Name: "Qatari Riyal", Region: entity.RegionMiddleEast, MinorUnits: 2,
		Aliases: []string{"qatar", "qatari"},
		Words:   []string{"qatari riyal"}},
	{Code: "KWD", Name: "Kuwaiti Dinar", Region: entity.RegionMiddleEast, MinorUnits: 3,
		Aliases: []string{"kuwait", "kuwaiti"},
		Words:   []string{"kuwaiti dinar"}},
	{Code: "BHD", Name: "Bahraini Dinar", Region: entity.RegionMiddleEast, MinorUnits: 3,
		Aliases: []string{"bahrain", "bahraini"},
		Words:   []string{"bahraini dinar"}},
	{Code: "OMR", Symbols: []string{"﷼"}, Name: "Omani Rial", Region: entity.RegionMiddleEast, MinorUnits: 3,
		Aliases: []string{"oman", "omani"},
		Words:   []string{"omani rial"}},
	{Code: "JOD", Name: "Jordanian Dinar", Region: entity.RegionMiddleEast, MinorUnits: 3,
		Aliases: []string{"jordanian"},
		Words:   []string{"jordanian dinar"}},
	{Code: "LBP", Name: "Lebanese Pound", Region: entity.RegionMiddleEast, MinorUnits: 2,
		Aliases: []string{"lebanon", "lebanese"},
		Words:   []string{"lebanese pound"}},
	{Code: "TRY", Symbols: []string{"₺"}, Name: "Turkish Lira", Region: entity.RegionMiddleEast, MinorUnits: 2,
		Aliases: []string{"turkey", "turkiye", "turkish"},
		Words:   []string{"turkish lira", "lira"}},
	{Code: "IRR", Symbols: []string{"﷼"}, Name: "Iranian Rial", Region: entity.RegionMiddleEast, MinorUnits: 0,
		Aliases: []string{"iran", "iranian", "persian"},
		Words:   []string{"iranian rial"}},
	{Code: "IQD", Name: "Iraqi Dinar", Region: entity.RegionMiddleEast, MinorUnits: 3,
		Aliases: []string{"iraq", "iraqi"},
		Words:   []string{"iraqi dinar"}},
	{Code: "SYP", Name: "Syrian Pound", Region: entity.RegionMiddleEast, MinorUnits: 2,
		Aliases: []string{"syria", "syrian"},
		Words:   []string{"syrian pound"}},
	{Code: "YER", Symbols: []string{"﷼"}, Name: "Yemeni Rial", Region: entity.RegionMiddleEast, MinorUnits: 2,
		Aliases: []string{"yemen", "yemeni"},
		Words:   []string{"yemeni rial"}},

	// Europe
	{Code: "GBP", Symbols: []string{"£"}, Name: "British Pound", Region: entity.RegionEurope, MinorUnits: 2,
		Aliases: []string{"united kingdom", "uk", "britain", "great britain", "british", "england"},
		Words:   []string{"british pound", "pound sterling", "sterling"}},
	{Code: "CHF", Symbols: []string{"Fr."}, Name: "Swiss Franc", Region: entity.RegionEurope, MinorUnits: 2,
		Aliases: []string{"switzerland", "swiss"},
		Words:   []string{"swiss franc", "franc"}},
	{Code: "SEK", Symbols: []string{"kr"}, Name: "Swedish Krona", Region: entity.RegionEurope, MinorUnits: 2,
		Aliases: []string{"sweden", "swedish"},
		Words:   []string{"swedish krona", "krona"}},
	{Code: "NOK", Symbols: []string{"kr"}, Name: "Norwegian Krone", Region: entity.RegionEurope, MinorUnits: 2,
		Aliases: []string{"norway", "norwegian"},
		Words:   []string{"norwegian krone"}},
	{Code: "DKK", Symbols: []string{"kr"}, Name: "Danish Krone", Region: entity.RegionEurope, MinorUnits: 2,
		Aliases: []string{"denmark", "danish"},
		Words:   []string{"danish krone"}},
	{Code: "PLN", Symbols: []string{"zł"}, Name: "Polish Zloty", Region: entity.RegionEurope, MinorUnits: 2,
		Aliases: []string{"poland"},
		Words:   []string{"polish zloty", "zloty"}},
	{Code: "CZK", Symbols: []string{"Kč"}, Name: "Czech Koruna", Region: entity.RegionEurope, MinorUnits: 2,
		Aliases: []string{"czech republic", "czechia", "czech"},
		Words:   []string{"czech koruna", "koruna"}},
	{Code: "HUF", Symbols: []string{"Ft"}, Name: "Hungarian Forint", Region: entity.RegionEurope, MinorUnits: 2,
		Aliases: []string{"hungary", "hungarian"},
		Words:   []string{"hungarian forint", "forint"}},
	{Code: "RUB", Symbols: []string{"₽"}, Name: "Russian Ruble", Region: entity.RegionEurope, MinorUnits: 2,
		Aliases: []string{"russia", "russian"},
		Words:   []string{"russian ruble", "ruble", "rouble"}},
	{Code: "UAH", Symbols: []string{"₴"}, Name: "Ukrainian Hryvnia", Region: entity.RegionEurope, MinorUnits: 2,
		Aliases: []string{"ukraine", "ukrainian"},
		Words:   []string{"ukrainian hryvnia", "hryvnia"}},

	// Americas
	{Code: "CAD", Symbols: []string{"CA$", "C$", "$"}, Name: "Canadian Dollar", Region: entity.RegionAmericas, MinorUnits: 2,
		Aliases: []string{"canada", "canadian"},
		Words:   []string{"canadian dollar"}},
	{Code: "MXN", Symbols: []string{"MX$", "$"}, Name: "Mexican Peso", Region: entity.RegionAmericas, MinorUnits: 2,
		Aliases: []string{"mexico", "mexican"},
		Words:   []string{"mexican peso", "peso"}},
	{Code: "BRL", Symbols: []string{"R$"}, Name: "Brazilian Real", Region: entity.RegionAmericas, MinorUnits: 2,
		Aliases: []string{"brazil", "brazilian", "brasil"},
		Words:   []string{"brazilian real", "reais"}},
	{Code: "ARS", Name: "Argentine Peso", Region: entity.RegionAmericas, MinorUnits: 2,
		Aliases: []string{"argentina", "argentine", "argentinian"},
		Words:   []string{"argentine peso"}},
	{Code: "CLP", Name: "Chilean Peso", Region: entity.RegionAmericas, MinorUnits: 0,
		Aliases: []string{"chile", "chilean"},
		Words:   []string{"chilean peso"}},
	{Code: "COP", Name: "Colombian Peso", Region: entity.RegionAmericas, MinorUnits: 2,
		Aliases: []string{"colombia", "colombian"},
		Words:   []string{"colombian peso"}},
	{Code: "PEN", Symbols: []string{"S/"}, Name: "Peruvian Sol", Region: entity.RegionAmericas, MinorUnits: 2,
		Aliases: []string{"peru", "peruvian"},
		Words:   []string{"peruvian sol"}},

	// Africa
	{Code: "ZAR", Symbols: []string{"R"}, Name: "South African Rand", Region: entity.RegionAfrica, MinorUnits: 2,
		Aliases: []string{"south africa", "south african"},
		Words:   []string{"south african rand", "rand"}},
	{Code: "EGP", Symbols: []string{"E£"}, Name: "Egyptian Pound", Region: entity.RegionAfrica, MinorUnits: 2,
		Aliases: []string{"egypt", "egyptian"},
		Words:   []string{"egyptian pound"}},
	{Code: "NGN", Symbols: []string{"₦"}, Name: "Nigerian Naira", Region: entity.RegionAfrica, MinorUnits: 2,
		Aliases: []string{"nigeria", "nigerian"},
		Words:   []string{"nigerian naira", "naira"}},
	{Code: "KES", Symbols: []string{"KSh"}, Name: "Kenyan Shilling", Region: entity.RegionAfrica, MinorUnits: 2,
		Aliases: []string{"kenya", "kenyan"},
		Words:   []string{"kenyan shilling"}},
	{Code: "MAD", Name: "Moroccan Dirham", Region: entity.RegionAfrica, MinorUnits: 2,
		Aliases: []string{"morocco", "moroccan"},
		Words:   []string{"moroccan dirham"}},
	{Code: "TND", Name: "Tunisian Dinar", Region: entity.RegionAfrica, MinorUnits: 3,
		Aliases: []string{"tunisia", "tunisian"},
		Words:   []string{"tunisian dinar"}},

	// Oceania
	{Code: "AUD", Symbols: []string{"AU$", "A$", "$"}, Name: "Australian Dollar", Region: entity.RegionOceania, MinorUnits: 2,
		Aliases: []string{"australia", "australian", "aussie"},
		Words:   []string{"australian dollar"}},
	{Code: "NZD", Symbols: []string{"NZ$", "$"}, Name: "New Zealand Dollar", Region: entity.RegionOceania, MinorUnits: 2,
		Aliases: []string{"new zealand"},
		Words:   []string{"new zealand dollar"}},
}
