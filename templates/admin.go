package templates

// AdminStrings are the responses to moderator commands. Key naming is
// <baseName>_<style>; {0} is the invoking user, {1} the target.
var AdminStrings = map[string]string{
	"adminBlockAlreadyExists_normal": "@{0}, the user {1} is already on the blocklist.",
	"adminBlockAlreadyExists_pirate": "Belay that, @{0}! {1} is already in the brig!",
	"adminBlockAlreadyExists_yoda":   "Already on the blocklist, {1} is, @{0}.",
	"adminBlockAlreadyExists_shakes": "Hold, @{0}! The user {1} is already barred.",
	"adminBlockAlreadyExists_dk":     "OOK? @{0}? (Points at {1}, confused) OOK.",
	"adminBlockAlreadyExists_baby":   "{1} already in timeout, @{0}!",

	"adminBlockConfirm_normal": "@{0}, the user {1} has been blocked from using translation commands.",
	"adminBlockConfirm_pirate": "Aye, @{0}! The scallywag {1} has been sent to the brig!",
	"adminBlockConfirm_yoda":   "Blocked from commands, the user {1} is, @{0}.",
	"adminBlockConfirm_shakes": "Hark, @{0}! The user {1} is henceforth barred from these commands.",
	"adminBlockConfirm_dk":     "OOK! @{0}! (Thumbs down for {1})",
	"adminBlockConfirm_baby":   "No more talky for {1}, @{0}!",

	"adminBlockNoUser_normal": "@{0}, you must specify a username to block.",
	"adminBlockNoUser_pirate": "Arrr, @{0}! Ye must name the scallywag ye wish to block!",
	"adminBlockNoUser_yoda":   "A username, specify you must, @{0}.",
	"adminBlockNoUser_shakes": "Pray, @{0}, name the soul thou wouldst block!",
	"adminBlockNoUser_dk":     "OOK! @{0}! (Who block?) OOK!",
	"adminBlockNoUser_baby":   "@{0}, who block? Need name!",

	"adminClearBlocklistConfirm_normal": "@{0}, the blocklist has been cleared.",
	"adminClearBlocklistConfirm_pirate": "Aye, @{0}! The blacklist be scrubbed clean as the deck!",
	"adminClearBlocklistConfirm_yoda":   "Cleared, the blocklist is, @{0}.",
	"adminClearBlocklistConfirm_shakes": "It is done, @{0}! The scroll of the banned hath been purged.",
	"adminClearBlocklistConfirm_dk":     "OOK! @{0}! (Wipes the slate clean) OOK OOK!",
	"adminClearBlocklistConfirm_baby":   "All gone, @{0}! Bad list is all clean now!",

	"adminClearBlocklistEmpty_normal": "@{0}, the blocklist is currently empty.",
	"adminClearBlocklistEmpty_pirate": "Avast, @{0}! The blacklist be already empty!",
	"adminClearBlocklistEmpty_yoda":   "Empty, the blocklist already is, @{0}.",
	"adminClearBlocklistEmpty_shakes": "Forsooth, @{0}, the ledger of the barred is already barren.",
	"adminClearBlocklistEmpty_dk":     "OOK? @{0}? (Scratches head, holds up empty banana peel)",
	"adminClearBlocklistEmpty_baby":   "Nothing there, @{0}! List is already empty!",

	"adminUnblockConfirm_normal": "{gender, select, male {@{0}, the user {1} has been unblocked.} female {@{0}, the user {1} has been unblocked.} other {@{0}, the user {1} has been unblocked.}}",
	"adminUnblockConfirm_pirate": "{gender, select, male {Aye, @{0}! The scallywag {1} has been freed from the brig!} female {Aye, @{0}! The scallywag {1} has been freed from the brig!} other {Aye, @{0}! The scallywag {1} has been freed from the brig!}}",
	"adminUnblockConfirm_yoda":   "{gender, select, male {Unblocked, the user {1} is, @{0}.} female {Unblocked, the user {1} is, @{0}.} other {Unblocked, the user {1} is, @{0}.}}",
	"adminUnblockConfirm_shakes": "{gender, select, male {Hark, @{0}! The user {1} is once more free to command.} female {Hark, @{0}! The user {1} is once more free to command.} other {Hark, @{0}! The user {1} is once more free to command.}}",
	"adminUnblockConfirm_dk":     "OOK! @{0}! (Thumbs up for {1})",
	"adminUnblockConfirm_baby":   "Okay now, @{0}! {1} can talky again!",

	"adminUnblockNotFound_normal": "@{0}, the user {1} was not found on the blocklist.",
	"adminUnblockNotFound_pirate": "Arrr, @{0}! I can't find {1} in the brig!",
	"adminUnblockNotFound_yoda":   "On the blocklist, {1} was not found, @{0}.",
	"adminUnblockNotFound_shakes": "Forsooth, @{0}, the user {1} was not among the barred.",
	"adminUnblockNotFound_dk":     "OOK? @{0}? (Looks for {1}, shrugs)",
	"adminUnblockNotFound_baby":   "No find {1}, @{0}! Not in timeout!",

	"adminUnblockNoUser_normal": "@{0}, you must specify a username to unblock.",
	"adminUnblockNoUser_pirate": "Arrr, @{0}! Ye must name the soul ye wish to set free!",
	"adminUnblockNoUser_yoda":   "A username, specify you must, @{0}, to unblock.",
	"adminUnblockNoUser_shakes": "Pray, @{0}, name the soul thou wouldst release!",
	"adminUnblockNoUser_dk":     "OOK! @{0}! (Who free?) OOK!",
	"adminUnblockNoUser_baby":   "@{0}, who free? Need name!",
}
