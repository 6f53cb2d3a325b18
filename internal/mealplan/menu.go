package mealplan

// Rotating menu tables. Breakfast and lunch rotate over 4 entries, dinner
// over 6, snacks over their list length. Each table has a standard variant
// and a comorbidity-adjusted variant selected per patient.

var breakfastStandard = [4]string{
	"Akamu (pap) with moi moi",
	"Bread with scrambled eggs and milk tea",
	"Yam porridge with spinach",
	"Akara with soaked garri",
}

var breakfastDiabetic = [4]string{
	"Unsweetened oat pap with boiled egg",
	"Wheat bread with egg white omelette, no sugar tea",
	"Boiled plantain with vegetable sauce",
	"Moi moi with unsweetened soy milk",
}

var lunchStandard = [4]string{
	"Jollof rice with grilled chicken and coleslaw",
	"Pounded yam with egusi soup and beef",
	"Beans porridge with fried plantain",
	"White rice with fish stew and steamed vegetables",
}

var lunchLowSodium = [4]string{
	"Unsalted jollof rice with grilled chicken, extra vegetables",
	"Pounded yam with low-salt vegetable soup and lean beef",
	"Beans porridge with boiled plantain, no added salt",
	"Boiled rice with fresh fish pepper soup, minimal salt",
}

var dinnerStandard = [6]string{
	"Eba with okra soup and goat meat",
	"Rice and beans with fried fish",
	"Amala with ewedu and stew",
	"Yam and egg sauce",
	"Semovita with vegetable soup and chicken",
	"Spaghetti with fish sauce",
}

var dinnerRenal = [6]string{
	"White rice with cabbage stew, small portion lean chicken",
	"Boiled yam with egg-white sauce",
	"Eba with okra soup, limited meat portion",
	"Rice with green-bean sauce",
	"Boiled plantain with cauliflower stew",
	"Semovita with low-potassium vegetable soup",
}

var snacksStandard = []string{
	"Banana",
	"Roasted groundnuts",
	"Orange",
	"Pawpaw slices",
	"Boiled corn",
	"Garden egg with groundnut paste",
}

var snacksLiverFriendly = []string{
	"Apple slices",
	"Watermelon",
	"Unsalted plain crackers",
	"Pawpaw slices",
	"Cucumber sticks",
	"Low-fat yoghurt",
}

func breakfastFor(diabetic bool, day int) string {
	if diabetic {
		return breakfastDiabetic[day%4]
	}
	return breakfastStandard[day%4]
}

func lunchFor(hypertensive bool, day int) string {
	if hypertensive {
		return lunchLowSodium[day%4]
	}
	return lunchStandard[day%4]
}

func dinnerFor(renal bool, day int) string {
	if renal {
		return dinnerRenal[day%6]
	}
	return dinnerStandard[day%6]
}

func snacksFor(liverDisease bool, day int) [2]string {
	list := snacksStandard
	if liverDisease {
		list = snacksLiverFriendly
	}
	return [2]string{
		list[(day*2)%len(list)],
		list[(day*2+1)%len(list)],
	}
}
