package nds

// regions maps the last byte of a game code to the region suffix of the
// product code, as in NTR-ADAE-USA.
var regions = map[byte]string{
	'A': "ASA",
	'C': "CHN",
	'D': "NOE",
	'E': "USA",
	'F': "FRA",
	'H': "HOL",
	'I': "ITA",
	'J': "JPN",
	'K': "KOR",
	'L': "USA",
	'M': "SWE",
	'N': "NOR",
	'O': "INT",
	'P': "EUR",
	'Q': "DEN",
	'R': "RUS",
	'S': "ESP",
	'T': "USA",
	'U': "AUS",
	'V': "EUR",
	'W': "EUR",
	'X': "EUR",
	'Y': "EUR",
	'Z': "EUR",
}

// makers maps two-character maker codes to publisher names.
var makers = map[string]string{
	"00": "None",
	"01": "Nintendo",
	"08": "Capcom",
	"13": "Electronic Arts",
	"18": "Hudson Soft",
	"19": "b-ai",
	"20": "KSS",
	"22": "pow",
	"24": "PCM Complete",
	"25": "san-x",
	"28": "Kemco Japan",
	"29": "Seta",
	"30": "Viacom",
	"31": "Nintendo",
	"32": "Bandai",
	"33": "Ocean/Acclaim",
	"34": "Konami",
	"35": "Hector",
	"37": "Taito",
	"38": "Hudson",
	"39": "Banpresto",
	"41": "Ubi Soft",
	"42": "Atlus",
	"44": "Malibu",
	"46": "angel",
	"47": "Bullet-Proof",
	"49": "irem",
	"4F": "Eidos",
	"4Q": "Disney Interactive",
	"50": "Absolute",
	"51": "Acclaim",
	"52": "Activision",
	"53": "American sammy",
	"54": "Konami",
	"55": "Hi tech entertainment",
	"56": "LJN",
	"57": "Matchbox",
	"58": "Mattel",
	"59": "Milton Bradley",
	"5D": "Midway",
	"5G": "Majesco",
	"60": "Titus",
	"61": "Virgin",
	"64": "LucasArts",
	"67": "Ocean/Acclaim",
	"69": "Electronic Arts",
	"6K": "UFO Interactive",
	"6V": "JoWooD",
	"70": "Infogrames",
	"71": "Interplay",
	"72": "Broderbund",
	"73": "Sculptured",
	"75": "sci",
	"78": "THQ",
	"79": "Accolade",
	"7D": "Vivendi",
	"7G": "Rage",
	"80": "misawa",
	"83": "lozc",
	"86": "tokuma shoten i",
	"87": "tsukuda ori",
	"8P": "Sega",
	"91": "Chun Soft",
	"92": "Video System",
	"93": "Ocean/Acclaim",
	"95": "Varie",
	"96": "Yonezawa/s'pal",
	"97": "Kaneo",
	"99": "Pack in soft",
	"A4": "Konami (Yu-Gi-Oh!)",
	"AF": "Namco",
	"B2": "Bandai",
	"DA": "Tomy",
	"EB": "Atlus",
	"G9": "D3 Publisher",
	"GD": "Square Enix",
	"GT": "505 Games",
	"HF": "Level-5",
	"WR": "Warner Bros",
}
