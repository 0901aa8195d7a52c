// Package airports holds the set of IATA airport codes the API recognizes.
package airports

var codes = map[string]struct{}{
	// Europe
	"LHR": {}, "LGW": {}, "STN": {}, "LTN": {}, "LCY": {}, "MAN": {}, "EDI": {}, "BHX": {}, "GLA": {}, "BRS": {},
	"CDG": {}, "ORY": {}, "NCE": {}, "LYS": {}, "MRS": {}, "TLS": {}, "BOD": {}, "NTE": {},
	"FRA": {}, "MUC": {}, "TXL": {}, "BER": {}, "DUS": {}, "HAM": {}, "STR": {}, "CGN": {},
	"AMS": {}, "BRU": {}, "LUX": {}, "ZRH": {}, "GVA": {}, "BSL": {}, "VIE": {}, "PRG": {},
	"MAD": {}, "BCN": {}, "AGP": {}, "PMI": {}, "VLC": {}, "SVQ": {}, "LIS": {}, "OPO": {}, "FAO": {},
	"FCO": {}, "MXP": {}, "LIN": {}, "VCE": {}, "NAP": {}, "BLQ": {}, "FLR": {}, "CTA": {},
	"ATH": {}, "SKG": {}, "IST": {}, "SAW": {}, "ADB": {}, "AYT": {}, "ESB": {},
	"CPH": {}, "ARN": {}, "GOT": {}, "OSL": {}, "BGO": {}, "HEL": {}, "KEF": {},
	"DUB": {}, "ORK": {}, "SNN": {}, "WAW": {}, "KRK": {}, "GDN": {}, "BUD": {}, "OTP": {}, "SOF": {},
	"ZAG": {}, "BEG": {}, "LJU": {}, "TIA": {}, "SKP": {}, "RIX": {}, "TLL": {}, "VNO": {},
	"SVO": {}, "DME": {}, "VKO": {}, "LED": {}, "KBP": {}, "MSQ": {}, "KIV": {}, "TBS": {}, "EVN": {}, "GYD": {},
	// Middle East and Africa
	"DXB": {}, "AUH": {}, "SHJ": {}, "DOH": {}, "BAH": {}, "KWI": {}, "RUH": {}, "JED": {}, "MCT": {},
	"TLV": {}, "AMM": {}, "BEY": {}, "CAI": {}, "HRG": {}, "SSH": {},
	"CMN": {}, "RAK": {}, "TUN": {}, "ALG": {}, "LOS": {}, "ABV": {}, "ACC": {}, "DKR": {},
	"ADD": {}, "NBO": {}, "DAR": {}, "EBB": {}, "JNB": {}, "CPT": {}, "DUR": {}, "MRU": {}, "SEZ": {},
	// Asia and Oceania
	"DEL": {}, "BOM": {}, "BLR": {}, "MAA": {}, "HYD": {}, "CCU": {}, "COK": {}, "GOI": {},
	"CMB": {}, "MLE": {}, "DAC": {}, "KTM": {}, "KHI": {}, "LHE": {}, "ISB": {},
	"BKK": {}, "DMK": {}, "HKT": {}, "CNX": {}, "SIN": {}, "KUL": {}, "PEN": {}, "LGK": {},
	"CGK": {}, "DPS": {}, "SUB": {}, "MNL": {}, "CEB": {},
	"SGN": {}, "HAN": {}, "DAD": {}, "PNH": {}, "REP": {}, "VTE": {}, "RGN": {},
	"HKG": {}, "MFM": {}, "TPE": {}, "KHH": {},
	"PEK": {}, "PKX": {}, "PVG": {}, "SHA": {}, "CAN": {}, "SZX": {}, "CTU": {}, "XIY": {}, "KMG": {},
	"NRT": {}, "HND": {}, "KIX": {}, "ITM": {}, "NGO": {}, "FUK": {}, "CTS": {}, "OKA": {},
	"ICN": {}, "GMP": {}, "PUS": {}, "CJU": {},
	"SYD": {}, "MEL": {}, "BNE": {}, "PER": {}, "ADL": {}, "CBR": {}, "OOL": {}, "CNS": {},
	"AKL": {}, "WLG": {}, "CHC": {}, "ZQN": {}, "NAN": {}, "PPT": {},
	"TAS": {}, "ALA": {}, "NQZ": {}, "FRU": {},
	// Americas
	"JFK": {}, "EWR": {}, "LGA": {}, "BOS": {}, "PHL": {}, "IAD": {}, "DCA": {}, "BWI": {},
	"ATL": {}, "MIA": {}, "FLL": {}, "MCO": {}, "TPA": {}, "CLT": {}, "RDU": {}, "BNA": {},
	"ORD": {}, "MDW": {}, "DTW": {}, "MSP": {}, "STL": {}, "MCI": {}, "CLE": {}, "PIT": {},
	"DFW": {}, "IAH": {}, "HOU": {}, "AUS": {}, "SAT": {}, "DEN": {}, "SLC": {}, "PHX": {}, "LAS": {},
	"LAX": {}, "SFO": {}, "SJC": {}, "OAK": {}, "SAN": {}, "SEA": {}, "PDX": {}, "ANC": {}, "HNL": {},
	"YYZ": {}, "YUL": {}, "YVR": {}, "YYC": {}, "YEG": {}, "YOW": {}, "YHZ": {}, "YWG": {},
	"MEX": {}, "CUN": {}, "GDL": {}, "MTY": {}, "SJO": {}, "PTY": {}, "HAV": {}, "SJU": {}, "KIN": {}, "NAS": {},
	"BOG": {}, "MDE": {}, "CTG": {}, "UIO": {}, "GYE": {}, "LIM": {}, "CUZ": {}, "LPB": {}, "VVI": {},
	"GRU": {}, "GIG": {}, "CGH": {}, "SDU": {}, "BSB": {}, "CNF": {}, "SSA": {}, "REC": {}, "FOR": {}, "POA": {},
	"EZE": {}, "AEP": {}, "COR": {}, "MDZ": {}, "SCL": {}, "MVD": {}, "ASU": {}, "CCS": {},
}

// Valid reports whether code is a recognized 3-letter IATA airport code.
// Codes are matched exactly as submitted.
func Valid(code string) bool {
	_, ok := codes[code]
	return ok
}
