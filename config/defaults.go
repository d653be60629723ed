package config

// Built-in static tables for the bot. All of this is inert data consumed
// by the bot's runtime and carried through the config; the sync engine
// only reads DefaultLanguages.

// DefaultLanguages are the supported language codes. "en" is canonical;
// "ptpt" is European Portuguese.
var DefaultLanguages = []string{
	"en", "pt", "ptpt", "es", "fr", "de", "it", "nl", "pl", "sv", "no", "fi", "da", "ja", "ko", "zh",
	"hi", "ar", "vi", "th", "id", "ru", "tr", "he", "el", "ht", "sw", "uk", "tl", "cs", "bg", "hu",
	"is", "ms", "fa", "ro", "bn",
}

// DefaultCommandAliases maps each language to its localized help command.
var DefaultCommandAliases = map[string]string{
	"en": "!translatehelp", "pt": "!ajudatraducao", "ptpt": "!ajudatraducao", "es": "!ayudatraduccion",
	"fr": "!aidetraduction", "de": "!übersetzenhilfe", "it": "!aiutotraduzione", "nl": "!vertaalhulp",
	"pl": "!tłumaczeniepomoc", "sv": "!översätthjälp", "no": "!oversetthjelp", "fi": "!käännösapu",
	"da": "!oversæthjælp", "ja": "!翻訳ヘルプ", "ko": "!번역도움말", "zh": "!翻译帮助",
	"hi": "!अनुवादमदद", "ar": "!مساعدة_الترجمة", "vi": "!trợgiúpdịch", "th": "!ช่วยแปล",
	"id": "!bantuanterjemah", "ru": "!переводпомощь", "tr": "!çeviriyardım", "he": "!תרגוםעזרה",
	"el": "!βοήθειαμετάφρασης", "ht": "!edtradiksyon", "sw": "!msaadatafsiri", "uk": "!допомогапереклад",
	"tl": "!tulongsaling", "cs": "!prekladpomoc", "bg": "!преводпомощ", "hu": "!forditassegitseg",
	"is": "!thyðingahjalp", "ms": "!bantuanterjemah", "fa": "!راهنمای_ترجمه", "ro": "!ajutortraducere",
	"bn": "!অনুবাদসাহায্য",
}

// DefaultStyleNames maps localized/native style words to internal style IDs.
var DefaultStyleNames = map[string]map[string]string{
	"en":   {"normal": "normal", "pirate": "pirate", "yoda": "yoda", "shakes": "shakes", "archaic": "shakes", "old": "shakes", "dk": "dk", "donkeykong": "dk", "baby": "baby"},
	"pt":   {"normal": "normal", "pirata": "pirate", "yoda": "yoda", "arcaico": "shakes", "antigo": "shakes", "dk": "dk", "donkeykong": "dk", "bebê": "baby", "bebe": "baby"},
	"ptpt": {"normal": "normal", "pirata": "pirate", "yoda": "yoda", "arcaico": "shakes", "antigo": "shakes", "dk": "dk", "donkeykong": "dk", "bebé": "baby", "bebe": "baby"},
	"es":   {"normal": "normal", "pirata": "pirate", "yoda": "yoda", "antiguo": "shakes", "arcaico": "shakes", "dk": "dk", "donkeykong": "dk", "bebé": "baby", "bebe": "baby"},
	"fr":   {"normal": "normal", "pirate": "pirate", "yoda": "yoda", "ancien": "shakes", "classique": "shakes", "dk": "dk", "donkeykong": "dk", "bébé": "baby", "bebe": "baby"},
	"de":   {"normal": "normal", "pirat": "pirate", "yoda": "yoda", "altdeutsch": "shakes", "archaisch": "shakes", "dk": "dk", "donkeykong": "dk", "baby": "baby"},
	"it":   {"normale": "normal", "pirata": "pirate", "yoda": "yoda", "antico": "shakes", "arcaico": "shakes", "dk": "dk", "donkeykong": "dk", "bambino": "baby"},
	"nl":   {"normaal": "normal", "piraat": "pirate", "yoda": "yoda", "ouderwets": "shakes", "archaïsch": "shakes", "archaisch": "shakes", "dk": "dk", "donkeykong": "dk", "baby": "baby"},
	"pl":   {"normalny": "normal", "pirat": "pirate", "yoda": "yoda", "archaiczny": "shakes", "staropolski": "shakes", "dk": "dk", "donkeykong": "dk", "dziecko": "baby"},
	"sv":   {"normal": "normal", "pirat": "pirate", "yoda": "yoda", "ålderdomlig": "shakes", "alderdomlig": "shakes", "gammaldags": "shakes", "dk": "dk", "donkeykong": "dk", "bebis": "baby"},
	"no":   {"normal": "normal", "pirat": "pirate", "yoda": "yoda", "gammeldags": "shakes", "arkaisk": "shakes", "dk": "dk", "donkeykong": "dk", "baby": "baby"},
	"fi":   {"normaali": "normal", "merirosvo": "pirate", "yoda": "yoda", "vanhaikainen": "shakes", "arkaainen": "shakes", "dk": "dk", "donkeykong": "dk", "vauva": "baby"},
	"da":   {"normal": "normal", "pirat": "pirate", "yoda": "yoda", "gammeldags": "shakes", "arkaisk": "shakes", "dk": "dk", "donkeykong": "dk", "baby": "baby"},
	"ja":   {"通常": "normal", "海賊": "pirate", "ヨーダ": "yoda", "古風": "shakes", "古語": "shakes", "時代劇": "shakes", "ドンキーコング": "dk", "赤ちゃん": "baby", "tsuujou": "normal", "kaizoku": "pirate", "yooda": "yoda", "kofuu": "shakes", "kogo": "shakes", "jidaigeki": "shakes", "donkiikongu": "dk", "akachan": "baby"},
	"ko":   {"일반": "normal", "해적": "pirate", "요다": "yoda", "사극": "shakes", "옛날말투": "shakes", "동키콩": "dk", "아기": "baby", "ilban": "normal", "haejeok": "pirate", "yennalmaltoo": "shakes", "sageuk": "shakes", "dongkikong": "dk", "agi": "baby"},
	"zh":   {"普通": "normal", "海盗": "pirate", "尤达": "yoda", "古文": "shakes", "古风": "shakes", "大金刚": "dk", "婴儿": "baby", "putong": "normal", "haidao": "pirate", "youda": "yoda", "guwen": "shakes", "gufeng": "shakes", "dajingang": "dk", "yinger": "baby"},
	"hi":   {"सामान्य": "normal", "समुद्रीडाकू": "pirate", "योडा": "yoda", "प्राचीन": "shakes", "पुराना": "shakes", "डीके": "dk", "बच्चा": "baby", "samanya": "normal", "samudridaku": "pirate", "prachin": "shakes", "purana": "shakes", "dike": "dk", "bachcha": "baby"},
	"ar":   {"عادي": "normal", "قرصان": "pirate", "يودا": "yoda", "فصيح": "shakes", "قديم": "shakes", "دونكي كونج": "dk", "رضيع": "baby", "aadi": "normal", "qursan": "pirate", "fasih": "shakes", "qadim": "shakes", "dunkikung": "dk", "radi": "baby"},
	"vi":   {"thường": "normal", "thuong": "normal", "cướpbiển": "pirate", "cuopbien": "pirate", "yoda": "yoda", "cổ": "shakes", "co": "shakes", "cổxưa": "shakes", "coxua": "shakes", "dk": "dk", "embé": "baby", "embe": "baby"},
	"th":   {"ปกติ": "normal", "โจรสลัด": "pirate", "โยดา": "yoda", "โบราณ": "shakes", "ดองกีคอง": "dk", "ทารก": "baby", "pakati": "normal", "chonsalat": "pirate", "boran": "shakes", "dongkikhong": "dk", "tharok": "baby"},
	"id":   {"normal": "normal", "bajaklaut": "pirate", "yoda": "yoda", "kuno": "shakes", "arkais": "shakes", "dk": "dk", "bayi": "baby"},
	"ru":   {"обычный": "normal", "пират": "pirate", "йода": "yoda", "старинный": "shakes", "архаичный": "shakes", "дк": "dk", "младенец": "baby", "obychnyy": "normal", "pirat": "pirate", "starinnyy": "shakes", "arkhaichnyy": "shakes", "mladenets": "baby"},
	"tr":   {"normal": "normal", "korsan": "pirate", "yoda": "yoda", "arkaik": "shakes", "eski": "shakes", "dk": "dk", "bebek": "baby"},
	"he":   {"רגיל": "normal", "פיראט": "pirate", "יודה": "yoda", "עתיק": "shakes", "ארכאי": "shakes", "דונקי קונג": "dk", "תינוק": "baby", "ragil": "normal", "pirat": "pirate", "atik": "shakes", "arkhai": "shakes", "donkikong": "dk", "tinok": "baby"},
	"el":   {"κανονικό": "normal", "πειρατής": "pirate", "γιόντα": "yoda", "αρχαϊκό": "shakes", "παλιό": "shakes", "ντόνκι κονγκ": "dk", "μωρό": "baby", "kanoniko": "normal", "peiratis": "pirate", "gionta": "yoda", "archaiko": "shakes", "palio": "shakes", "ntonkikonk": "dk", "moro": "baby"},
	"ht":   {"nòmal": "normal", "nomal": "normal", "pirat": "pirate", "yoda": "yoda", "ansyen": "shakes", "vye": "shakes", "dk": "dk", "tibebe": "baby"},
	"sw":   {"kawaida": "normal", "mharamia": "pirate", "yoda": "yoda", "kikale": "shakes", "kizamani": "shakes", "dk": "dk", "mtoto": "baby"},
	"uk":   {"звичайний": "normal", "пірат": "pirate", "йода": "yoda", "старовинний": "shakes", "архаїчний": "shakes", "дк": "dk", "немовля": "baby", "zvychaynyy": "normal", "pirat": "pirate", "starovynnyy": "shakes", "arkhayichnyy": "shakes", "nemovlya": "baby"},
	"tl":   {"normal": "normal", "pirata": "pirate", "yoda": "yoda", "makaluma": "shakes", "sinauna": "shakes", "dk": "dk", "sanggol": "baby"},
	"cs":   {"normální": "normal", "normalni": "normal", "pirát": "pirate", "pirat": "pirate", "yoda": "yoda", "archaický": "shakes", "archaicky": "shakes", "starobylý": "shakes", "starobyly": "shakes", "dk": "dk", "dítě": "baby", "dite": "baby"},
	"bg":   {"нормален": "normal", "пират": "pirate", "йода": "yoda", "архаичен": "shakes", "старинен": "shakes", "дк": "dk", "бебе": "baby", "normalen": "normal", "pirat": "pirate", "arhaichen": "shakes", "starinen": "shakes", "bebe": "baby"},
	"hu":   {"normál": "normal", "normal": "normal", "kalóz": "pirate", "kaloz": "pirate", "yoda": "yoda", "régies": "shakes", "regies": "shakes", "archaizáló": "shakes", "archaizalo": "shakes", "dk": "dk", "baba": "baby"},
	"is":   {"venjulegur": "normal", "sjóræningi": "pirate", "sjoraeningi": "pirate", "yoda": "yoda", "forn": "shakes", "gamaldags": "shakes", "dk": "dk", "barn": "baby"},
	"ms":   {"biasa": "normal", "lanun": "pirate", "yoda": "yoda", "kuno": "shakes", "lama": "shakes", "dk": "dk", "bayi": "baby"},
	"fa":   {"عادی": "normal", "دزددریایی": "pirate", "یودا": "yoda", "کهن": "shakes", "باستانی": "shakes", "دی‌کی": "dk", "بچه": "baby", "aadi": "normal", "dozdedaryayi": "pirate", "kohan": "shakes", "bastani": "shakes", "dikey": "dk", "bachche": "baby"},
	"ro":   {"normal": "normal", "pirat": "pirate", "yoda": "yoda", "arhaic": "shakes", "vechi": "shakes", "dk": "dk", "bebeluș": "baby", "bebelus": "baby"},
	"bn":   {"সাধারণ": "normal", "জলদস্যু": "pirate", "যোডা": "yoda", "প্রাচীন": "shakes", "পুরানো": "shakes", "ডিকে": "dk", "শিশু": "baby", "shadharon": "normal", "jolodossu": "pirate", "joda": "yoda", "prachin": "shakes", "purano": "shakes", "dike": "dk", "shishu": "baby"},
}
