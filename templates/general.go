package templates

// GeneralUIStrings are the everyday bot responses. {1} is usually the
// subject word or list; selector blocks carry gender agreement where a
// target language needs it.
var GeneralUIStrings = map[string]string{
	"alreadyTranslated_normal": "That message is already in the target language!",
	"alreadyTranslated_pirate": "Shiver me timbers! That be the tongue we're sailin' to already!",
	"alreadyTranslated_yoda":   "In the target language, that message already is. Hmmm.",
	"alreadyTranslated_shakes": "Hold, for thy message is already writ in the desired parlance!",
	"alreadyTranslated_dk":     "OOK! (Points, nods) OOK OOK!",
	"alreadyTranslated_baby":   "Already that talky! No need change!",

	"apiError_normal": "Sorry, a Translation.Bot error occurred.",
	"apiError_pirate": "Shiver me timbers! The cursed machine has sprung a leak!",
	"apiError_yoda":   "A disturbance in the Force, there is. An error, I sense.",
	"apiError_shakes": "Alas, a foul error doth plague the machine's very soul!",
	"apiError_dk":     "OOK! OOOOK! (beats chest in frustration)",
	"apiError_baby":   "Uh oh! Translation.Bot go boom-boom!",

	"blocked_normal": "Sorry, that message cannot be translated.",
	"blocked_pirate": "Belay that! Those words be forbidden on this ship!",
	"blocked_yoda":   "Translate this, I cannot. A dark path, those words are.",
	"blocked_shakes": "Hold! Such vulgar parlance shall not pass from my lips!",
	"blocked_dk":     "GRRRR! OOK! (shakes head no)",
	"blocked_baby":   "No-no talky! Bad words!",

	"blocklistAddConfirm_normal": "The word {1} has been added to the translation blocklist.",
	"blocklistAddConfirm_pirate": "Aye, the word {1} has been blacklisted from our parley!",
	"blocklistAddConfirm_yoda":   "To the blocklist, the word {1} added has been.",
	"blocklistAddConfirm_shakes": "Hark! The word {1} is henceforth forbidden from translation.",
	"blocklistAddConfirm_dk":     "OOK! (Thumbs down for {1}) OOK OOK!",
	"blocklistAddConfirm_baby":   "No more {1}! Bad word!",

	"blocklistAlreadyExists_normal": "The word {1} is already in the translation blocklist.",
	"blocklistAlreadyExists_pirate": "Belay that! The word {1} is already on the blacklist!",
	"blocklistAlreadyExists_yoda":   "Already on the blocklist, the word {1} is.",
	"blocklistAlreadyExists_shakes": "Hold! The word {1} is already proscribed!",
	"blocklistAlreadyExists_dk":     "Ook? {1}? Ook.",
	"blocklistAlreadyExists_baby":   "{1} already no-no word!",

	"blockListUsers_normal": "Blocked users: {1}",
	"blockListUsers_pirate": "Here be the scallywags in the brig: {1}",
	"blockListUsers_yoda":   "In the blocklist, these users are: {1}",
	"blockListUsers_shakes": "Behold, the list of the barred: {1}",
	"blockListUsers_dk":     "OOK! (Points at list of blocked monkeys: {1})",
	"blockListUsers_baby":   "These are the no-no people: {1}",

	"blockListUsersEmpty_normal": "The user blocklist is currently empty.",
	"blockListUsersEmpty_pirate": "The brig be empty! Not a single soul is locked away.",
	"blockListUsersEmpty_yoda":   "Empty, the blocklist is.",
	"blockListUsersEmpty_shakes": "Forsooth, the list of the barred is barren.",
	"blockListUsersEmpty_dk":     "OOK! (Shows empty banana peel)",
	"blockListUsersEmpty_baby":   "No no-no people! All friends!",

	"blockListWords_normal": "Blocked words: {1}",
	"blockListWords_pirate": "Here be the forbidden parley: {1}",
	"blockListWords_yoda":   "Forbidden, these words are: {1}",
	"blockListWords_shakes": "Behold, the list of proscribed words: {1}",
	"blockListWords_dk":     "OOK! (Points at list of bad bananas: {1})",
	"blockListWords_baby":   "These are the no-no words: {1}",

	"blockListWordsEmpty_normal": "The word blocklist is currently empty.",
	"blockListWordsEmpty_pirate": "There be no forbidden words on this ship!",
	"blockListWordsEmpty_yoda":   "Empty, the word blocklist is.",
	"blockListWordsEmpty_shakes": "Forsooth, no words have been proscribed.",
	"blockListWordsEmpty_dk":     "OOK! (Shows clean slate)",
	"blockListWordsEmpty_baby":   "No no-no words! All talkies okay!",

	"blocklistNoWord_normal": "You need to specify a word to block or unblock!",
	"blocklistNoWord_pirate": "Avast! Ye must name the word ye wish to cast into the sea!",
	"blocklistNoWord_yoda":   "A word, specify you must.",
	"blocklistNoWord_shakes": "Pray, specify the word thou wishest to affect!",
	"blocklistNoWord_dk":     "OOK? (What word?)",
	"blocklistNoWord_baby":   "What word? Need word!",

	"blocklistNotFound_normal": "The word {1} was not found in the translation blocklist.",
	"blocklistNotFound_pirate": "Arrr, the word {1} was not on the blacklist to begin with!",
	"blocklistNotFound_yoda":   "On the blocklist, the word {1} was not found.",
	"blocklistNotFound_shakes": "Forsooth, the word {1} was not found among the proscribed terms!",
	"blocklistNotFound_dk":     "Ook? {1}? (shrugs)",
	"blocklistNotFound_baby":   "No find {1}! Not a no-no word!",

	"blocklistRemoveConfirm_normal": "The word {1} has been removed from the translation blocklist.",
	"blocklistRemoveConfirm_pirate": "Heave ho! The word {1} has been struck from the blacklist!",
	"blocklistRemoveConfirm_yoda":   "From the blocklist, the word {1} removed has been.",
	"blocklistRemoveConfirm_shakes": "So be it! The proscription against the word {1} is lifted.",
	"blocklistRemoveConfirm_dk":     "OOK! (Thumbs up for {1})",
	"blocklistRemoveConfirm_baby":   "Okay now! Can say {1}!",

	"clearConfirm_normal": "Your language preferences have been cleared.",
	"clearConfirm_pirate": "Heave ho! Yer custom chart has been sent to Davy Jones' Locker.",
	"clearConfirm_yoda":   "Cleared, your preferences are. Forget them, I will.",
	"clearConfirm_shakes": "Thus, thy linguistic decree is rendered null and void.",
	"clearConfirm_dk":     "OOK! (stomp stomp) OOK OOK!",
	"clearConfirm_baby":   "All gone! Preferences all gone!",

	"clearNone_normal": "You did not have a language preference to clear.",
	"clearNone_pirate": "Avast ye! There be no chart in yer hold to cast overboard!",
	"clearNone_yoda":   "A preference to clear, you have not. Hmmm.",
	"clearNone_shakes": "Forsooth, thou hadst no established preference to annul.",
	"clearNone_dk":     "Ook? (scratches head)",
	"clearNone_baby":   "No have! No have thing to throw away!",

	"confirmPartPronouns_normal": "pronouns to '{0}'",
	"confirmPartPronouns_pirate": "pronouns to '{0}'",
	"confirmPartPronouns_yoda":   "pronouns to '{0}'",
	"confirmPartPronouns_shakes": "pronouns to '{0}'",
	"confirmPartPronouns_dk":     "(sets name-sounds to '{0}')",
	"confirmPartPronouns_baby":   "you-words to '{0}'",

	"confirmPartSpeaking_normal": "speaking language to {0}",
	"confirmPartSpeaking_pirate": "my tongue to {0}",
	"confirmPartSpeaking_yoda":   "my voice to {0}",
	"confirmPartSpeaking_shakes": "my parlance to {0}",
	"confirmPartSpeaking_dk":     "(changes OOKS to {0})",
	"confirmPartSpeaking_baby":   "my babble-talk to {0}",

	"confirmPartStyle_normal": "style to {0}",
	"confirmPartStyle_pirate": "swagger to {0}",
	"confirmPartStyle_yoda":   "style to {0}",
	"confirmPartStyle_shakes": "manner to {0}",
	"confirmPartStyle_dk":     "(sets OOK-style to {0})",
	"confirmPartStyle_baby":   "play-style to {0}",

	"confirmPartTarget_normal": "target language to {0}",
	"confirmPartTarget_pirate": "new heading to the {0} seas",
	"confirmPartTarget_yoda":   "translation path to {0}",
	"confirmPartTarget_shakes": "thy course to {0}",
	"confirmPartTarget_dk":     "(sets banana-path to {0})",
	"confirmPartTarget_baby":   "new talky-place to {0}",

	"dailyLimit_normal": "That command is too complex for the remaining daily API limit.",
	"dailyLimit_pirate": "The rum barrel is empty for today, matey! No more magic 'til sunrise.",
	"dailyLimit_yoda":   "Tired, the Force is. For today, no more power remains.",
	"dailyLimit_shakes": "Alas, the well of knowledge runs dry for this day! The command is too great a burden.",
	"dailyLimit_dk":     "Oook... (yawns, lies down)",
	"dailyLimit_baby":   "Translation.Bot sleepy... all sleepy... no more thinky-think.",

	"helpLinkNotFound_normal": "Sorry, I couldn't find a help guide link.",
	"helpLinkNotFound_pirate": "Shiver me timbers! I can't seem to find the treasure map ye be lookin' for!",
	"helpLinkNotFound_yoda":   "A link to the guide, find it I cannot. Lost, it seems to be.",
	"helpLinkNotFound_shakes": "Alas, the charter for which thou seekest cannot be found!",
	"helpLinkNotFound_dk":     "Ook? (scratches head, shrugs) Ook ook!",
	"helpLinkNotFound_baby":   "Uh oh! Linky all gone!",

	"helpTranslate_normal": "{gender, select, male {@{0}, you need to provide text to translate! For a full guide, type !translatehelp} female {@{0}, you need to provide text to translate! For a full guide, type !translatehelp} other {@{0}, you need to provide text to translate! For a full guide, type !translatehelp}}",
	"helpTranslate_pirate": "{gender, select, male {Arrr, @{0}! Ye must give me some words to parley! Try !translatehelp for the full map.} female {Arrr, @{0}! Ye must give me some words to parley! Try !translatehelp for the full map.} other {Arrr, @{0}! Ye must give me some words to parley! Try !translatehelp for the full map.}}",
	"helpTranslate_yoda":   "{gender, select, male {Provide text, you must, @{0}. Guidance you seek? !translatehelp, you will type.} female {Provide text, you must, @{0}. Guidance you seek? !translatehelp, you will type.} other {Provide text, you must, @{0}. Guidance you seek? !translatehelp, you will type.}}",
	"helpTranslate_shakes": "{gender, select, male {Pray, @{0}, bestow upon me some text for which to render! For the full charter, !translatehelp.} female {Pray, @{0}, bestow upon me some text for which to render! For the full charter, !translatehelp.} other {Pray, @{0}, bestow upon me some text for which to render! For the full charter, !translatehelp.}}",
	"helpTranslate_dk":     "OOK! @{0}! (Need words!) OOK! (Try !translatehelp!)",
	"helpTranslate_baby":   "@{0}, need talkies! Gib talkies! Need help? Try !translatehelp.",

	"invalidCode_normal": "{0} is not a valid language code.",
	"invalidCode_pirate": "Arrr, that be no proper heading! {0} is not a known tongue.",
	"invalidCode_yoda":   "A valid code, {0} is not. Choose again, you must.",
	"invalidCode_shakes": "Fie! The code {0} is but a phantom, unknown to this realm.",
	"invalidCode_dk":     "OOK?! {0}?! (tilts head, confused)",
	"invalidCode_baby":   "No like {0}! Bad talky-word!",
}
