package directory

var hospitals = map[string][]Hospital{
	"Anand Vihar": {
		{"Max Super Speciality Hospital", "108A, IP Extension, Patparganj", "011-4055 4055"},
		{"Dharamshila Narayana Hospital", "Dharamshila Marg, Vasundhara Enclave", "011-4712 2222"},
	},
	"Dwarka": {
		{"Venkateshwar Hospital", "Sec 18A, Dwarka", "011-4220 2222"},
		{"Manipal Hospital Dwarka", "Sec 6, Dwarka", "011-4966 6666"},
	},
	"Rohini": {
		{"Jaipur Golden Hospital", "Sec 3, Rohini", "011-2757 2100"},
		{"Saroj Super Speciality Hospital", "Sec 14, Rohini", "011-4700 4700"},
	},
	"Punjabi Bagh": {
		{"Handa Nursing Home", "Club Rd, Punjabi Bagh", "011-2521 0101"},
		{"Balaji Action Medical Institute", "A-4, Paschim Vihar", "011-4299 4299"},
	},
	"Noida": {
		{"Fortis Hospital Noida", "B-22, Sec 62, Noida", "0120-240 0222"},
		{"Jaypee Hospital", "Sec 128, Noida", "0120-412 2222"},
		{"Yatharth Hospital", "Sec 110, Noida", "0120-461 2222"},
	},
	"Greater Noida": {
		{"Sharda Hospital", "Knowledge Park III", "0120-231 0099"},
		{"Kailash Hospital", "Sec Alpha 2", "0120-232 5000"},
	},
	"Gurugram": {
		{"Medanta – The Medicity", "Sec 38, Gurugram", "0124-414 1414"},
		{"Artemis Hospital", "Sec 51, Gurugram", "0124-676 7000"},
		{"Fortis Memorial Research Institute", "Sec 44, Gurugram", "0124-496 2200"},
	},
	"Faridabad": {
		{"Asian Hospital", "Sec 21A, Faridabad", "0129-410 3333"},
		{"Sarvodaya Hospital", "YMCA Rd, Sec 8, Faridabad", "0129-427 0000"},
	},
	"Ghaziabad": {
		{"Yashoda Super Speciality Hospital", "Nehru Nagar, Ghaziabad", "0120-412 2000"},
		{"Columbia Asia Hospital", "NH-24, Ghaziabad", "0120-673 6200"},
	},
	"ITO": {
		{"LNJP Hospital", "JLN Marg, Delhi Gate", "011-2323 4242"},
		{"Maulana Azad Medical College", "BSZ Marg, Delhi Gate", "011-2323 9271"},
	},
	"Shadipur": {
		{"Sir Ganga Ram Hospital", "Rajinder Nagar", "011-2586 1313"},
		{"BLK-Max Super Speciality Hospital", "Pusa Rd", "011-3040 3040"},
	},
	"RK Puram": {
		{"AIIMS", "Ansari Nagar, New Delhi", "011-2658 8500"},
		{"Safdarjung Hospital", "Ansari Nagar West", "011-2616 4033"},
	},
	"Siri Fort": {
		{"Holy Family Hospital", "Okhla Rd, Jasola", "011-2668 4440"},
		{"Apollo Hospital", "Sarita Vihar, Mathura Rd", "011-7179 1090"},
	},
	"Okhla": {
		{"Holy Family Hospital", "Okhla Rd, Jasola", "011-2668 4440"},
		{"Apollo Hospital", "Sarita Vihar", "011-7179 1090"},
	},
	"Jahangirpuri": {
		{"BJRM Hospital", "Jahangirpuri", "011-2727 2071"},
		{"Deep Chand Bandhu Hospital", "Ashok Vihar", "011-2713 6565"},
	},
	"Wazirpur": {
		{"Max Hospital Shalimar Bagh", "Shalimar Bagh", "011-2735 8700"},
		{"Fortis Hospital Shalimar Bagh", "Shalimar Bagh", "011-4530 2222"},
	},
	"Bawana": {
		{"SGM Hospital", "Mangolpuri", "011-2790 2403"},
		{"Sanjay Gandhi Hospital", "Mangolpuri", "011-2791 0370"},
	},
	"Mandir Marg": {
		{"RML Hospital", "Baba Kharak Singh Marg", "011-2336 5525"},
		{"Lady Hardinge Medical College", "Connaught Place", "011-2336 3448"},
	},
}
