// Package mnemonic implements the dual human-facing representation:
// one word per secret byte drawn from a fixed 256-word list, and a
// parallel "intcode" numeric encoding, each able to fill in gaps in
// the other via Reed-Solomon recovery. Fuzzy word matching layers
// Damerau-Levenshtein correction on top of the exact-prefix lookup,
// grounded on github.com/agnivade/levenshtein (the teacher's fuzzy-match
// dependency) extended with transposition handling the library itself
// does not provide.
package mnemonic

// wordlist is part of the specification: exactly 256 entries, each
// 5-7 characters, with unique 3-character prefixes and pairwise
// Damerau-Levenshtein distance of at least 4. Changing any entry is a
// version bump, not a patch.
var wordlist = [256]string{
	"bahafom", "bajuze", "bedid", "belvor", "benagub", "bewzola", "bicufap", "bihac",
	"bijikhi", "bitivo", "bohobpo", "borborn", "busfudp", "buwuj", "cafusos", "catdame",
	"ceceze", "cefwupe", "cigemi", "cikewah", "cinlelv", "ciwomfe", "cofro", "corupwu",
	"cudzubo", "cukuzan", "culaga", "cutelu", "cuzind", "dabezmi", "dafokj", "defani",
	"dehelga", "delep", "devgud", "dihiwoh", "dodovlu", "dohudi", "domehsu", "dosfaw",
	"fadrira", "fagocob", "fajanl", "famowi", "farafbe", "fazzuru", "febukne", "fecuta",
	"fedecla", "fenob", "fepasnu", "fibebt", "fistig", "fizgakn", "fobdov", "focosic",
	"fomvez", "fovikfi", "fudabib", "fugsal", "fujdora", "fusadba", "gabifa", "gadete",
	"gakumok", "gapizvu", "gawoluv", "gebarec", "gegdot", "geliwi", "gevomel", "gijizup",
	"gimihma", "giskuvi", "givfuje", "gonilca", "gopebem", "gosuhk", "gufive", "gumazg",
	"havavok", "hehrudb", "hejujas", "hezikeh", "hidado", "hikovma", "hitos", "howlaki",
	"hubzuf", "huhnijo", "hukacah", "huzgovv", "jakemm", "janipp", "jasgume", "jegicab",
	"jelefih", "jideh", "jimazaj", "jirafer", "jocad", "jokviv", "joptuw", "jowela",
	"jufumi", "jugokew", "jumahob", "juvnin", "kahis", "kazkata", "kebusal", "kekaje",
	"kilohu", "kizvamk", "kokevaj", "komhamh", "kotna", "kulwes", "kutiri", "lacfuvk",
	"lararip", "lepoma", "lippit", "litacja", "lizurc", "lodicez", "lonopg", "luhmim",
	"lujuzos", "lunas", "mahalu", "medomus", "mehbiha", "mepawok", "mijdodu", "misucpi",
	"molme", "mudogk", "muffirw", "mujdan", "mutuvba", "nadenav", "nanewcu", "napabza",
	"narbem", "naziffu", "nebecod", "nezawa", "nigowo", "nilisim", "niwuzuc", "nocnusb",
	"nohonw", "novmowa", "nuhakze", "nunusid", "nupvoc", "nuzge", "pacmuf", "papulip",
	"pazej", "pemmo", "pezcac", "pisode", "pizutid", "pogubej", "popsiwa", "poscuni",
	"pucesfe", "pugimu", "puhvun", "ragith", "rahuwn", "rakgaku", "remmikf", "retibwo",
	"rewago", "ribara", "rilubum", "rirtire", "riwzim", "roduzu", "rofbul", "rosikdu",
	"rovked", "rununka", "rupca", "sabfigi", "safha", "sejojc", "sibice", "sifluv",
	"simomz", "sujfono", "supamku", "tekonde", "teselno", "tewifje", "tinucuw", "tiregej",
	"titemut", "tolgol", "tosesoj", "tubih", "tucatu", "tujarat", "tukkegw", "tunfuwe",
	"vazafiv", "vebilgo", "vehmar", "vejekf", "vekuzki", "veloso", "vezunju", "vikozbe",
	"vilujvo", "vitajeg", "vojihe", "voroseh", "vozrem", "vugon", "vulowic", "vuweml",
	"wadso", "waferu", "weggako", "wenudar", "wepzup", "wesba", "wezhigo", "widnasm",
	"wipohol", "wiruto", "wocwuch", "wogukla", "wonedja", "worofat", "wovoje", "wowik",
	"wozewo", "wubunho", "wukceti", "wumokc", "wutrave", "zarawo", "zebotw", "zevfuwu",
	"zicun", "zifkude", "zirmojr", "zobzoji", "zocodem", "zogsir", "zusewuf", "zuwivca",
}

