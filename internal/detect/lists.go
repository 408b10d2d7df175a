package detect

// Built-in phrase lists. The four categories are disjoint; the database
// phrase store seeds from these and can extend them at runtime.

// DefaultContactBait are phrases luring readers into off-platform contact.
var DefaultContactBait = []string{
	"whatsapp",
	"dm me",
	"text me",
	"message me",
	"my number",
	"contact me on",
	"reach me on",
	"hit me up",
	"telegram me",
	"add me on",
}

// DefaultScamKeywords are giveaway and prize-bait phrases.
var DefaultScamKeywords = []string{
	"giveaway",
	"free gift",
	"you have been selected",
	"you won",
	"claim your prize",
	"congratulations you",
	"winner announced",
	"cash app",
	"gift card",
	"limited slots",
}

// DefaultCryptoKeywords are investment and crypto-bait phrases.
var DefaultCryptoKeywords = []string{
	"crypto",
	"bitcoin",
	"forex",
	"invest with",
	"trading expert",
	"profit daily",
	"passive income",
	"financial freedom",
	"wealth manager",
	"binary options",
}

// DefaultPromoKeywords are self-promotion phrases.
var DefaultPromoKeywords = []string{
	"subscribe to my",
	"check out my channel",
	"sub4sub",
	"sub 4 sub",
	"follow me",
	"my latest video",
	"visit my page",
	"check my profile",
	"link in bio",
	"promo code",
}

// DefaultShorteners are URL shortener domains counted as links even without
// a scheme or www prefix.
var DefaultShorteners = []string{
	"bit.ly",
	"tinyurl.com",
	"t.co",
	"goo.gl",
	"cutt.ly",
	"rb.gy",
	"is.gd",
	"shorturl.at",
	"rebrand.ly",
}
