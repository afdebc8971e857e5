package main

// Curated category content, split into three tiers. Generated puzzles
// take one yellow, one green, and two tricky categories; the tricky
// table doubles as the blue and purple tiers.

type categoryEntry struct {
	theme string
	words [4]string
}

func (e categoryEntry) category(d Difficulty) Category {
	return Category{
		Theme:      e.theme,
		Words:      append([]string(nil), e.words[:]...),
		Difficulty: d,
	}
}

var easyCategories = []categoryEntry{
	{"Things with scales", [4]string{"FISH", "PIANO", "MAP", "JUSTICE"}},
	{"Things with tongues", [4]string{"SHOE", "BELL", "FLAME", "SNAKE"}},
	{"Things that tick", [4]string{"CLOCK", "BOMB", "HEART", "BOX"}},
	{"Things that can be stuffed", [4]string{"TURKEY", "ANIMAL", "PEPPER", "SHIRT"}},
	{"Things that fold", [4]string{"CHAIR", "PAPER", "LAUNDRY", "POKER"}},
	{"Types of bread", [4]string{"RYE", "PUMPERNICKEL", "SOURDOUGH", "CIABATTA"}},
	{"Pasta shapes", [4]string{"PENNE", "RIGATONI", "FUSILLI", "FARFALLE"}},
	{"Coffee drinks", [4]string{"ESPRESSO", "AMERICANO", "MACCHIATO", "CORTADO"}},
	{"Cheese varieties", [4]string{"BRIE", "GOUDA", "GRUYERE", "MANCHEGO"}},
	{"Disney villains", [4]string{"URSULA", "SCAR", "JAFAR", "MALEFICENT"}},
	{"Pixar characters", [4]string{"WOODY", "NEMO", "WALL-E", "SULLEY"}},
	{"Ivy League schools", [4]string{"HARVARD", "YALE", "PRINCETON", "BROWN"}},
	{"London tube lines", [4]string{"CENTRAL", "VICTORIA", "JUBILEE", "PICCADILLY"}},
	{"NYC boroughs", [4]string{"MANHATTAN", "BROOKLYN", "QUEENS", "BRONX"}},
	{"California cities", [4]string{"OAKLAND", "FRESNO", "PASADENA", "BURBANK"}},
	{"Things that can be wild", [4]string{"CARD", "GUESS", "CHILD", "PITCH"}},
	{"Things that can be blank", [4]string{"CHECK", "STARE", "SLATE", "CANVAS"}},
	{"Things that can be loaded", [4]string{"DICE", "QUESTION", "GUN", "POTATO"}},
}

var mediumCategories = []categoryEntry{
	{"Units of measurement", [4]string{"FOOT", "YARD", "POUND", "STONE"}},
	{"Dances", [4]string{"SWING", "TAP", "TWIST", "BREAK"}},
	{"Fonts", [4]string{"TIMES", "ARIAL", "IMPACT", "COURIER"}},
	{"Keyboard keys", [4]string{"SHIFT", "CONTROL", "RETURN", "SPACE"}},
	{"Golf terms", [4]string{"BIRDIE", "EAGLE", "BOGEY", "DRIVER"}},
	{"Poker hands", [4]string{"FLUSH", "STRAIGHT", "PAIR", "HOUSE"}},
	{"Coffee sizes", [4]string{"TALL", "GRANDE", "VENTI", "SHORT"}},
	{"Tarantino films", [4]string{"PULP", "RESERVOIR", "JACKIE", "HATEFUL"}},
	{"Wes Anderson films", [4]string{"ROYAL", "MOONRISE", "GRAND", "FANTASTIC"}},
	{"Nintendo franchises", [4]string{"MARIO", "ZELDA", "METROID", "KIRBY"}},
	{"Things sold by the dozen", [4]string{"EGGS", "ROSES", "DONUTS", "BAGELS"}},
	{"Things with stripes", [4]string{"ZEBRA", "TIGER", "CANDY", "FLAG"}},
	{"Things that come in pairs", [4]string{"SOCKS", "TWINS", "DICE", "LUNGS"}},
	{"Things with layers", [4]string{"ONION", "CAKE", "LASAGNA", "OGRE"}},
	{"Things that melt", [4]string{"ICE", "BUTTER", "CHOCOLATE", "HEART"}},
	{"Things that sting", [4]string{"BEE", "JELLYFISH", "NETTLE", "INSULT"}},
	{"Things with buttons", [4]string{"SHIRT", "REMOTE", "ELEVATOR", "BELLY"}},
	{"Casino games", [4]string{"CRAPS", "SLOTS", "ROULETTE", "BLACKJACK"}},
	{"Monopoly properties", [4]string{"PARK", "BOARDWALK", "BALTIC", "ORIENTAL"}},
	{"Clue suspects", [4]string{"MUSTARD", "SCARLET", "PLUM", "PEACOCK"}},
	{"Types of knots", [4]string{"SQUARE", "SLIP", "GRANNY", "BOWLINE"}},
	{"Card game actions", [4]string{"DEAL", "DRAW", "PASS", "BID"}},
}

var trickyCategories = []categoryEntry{
	{"Hidden body parts", [4]string{"TEMPLE", "PALM", "CROWN", "SOLE"}},
	{"Body parts in phrases", [4]string{"ELBOW", "SHOULDER", "KNEE", "TONGUE"}},
	{"_____ King", [4]string{"BURGER", "LION", "STEPHEN", "DRAG"}},
	{"Things with keys", [4]string{"PIANO", "KEYBOARD", "MAP", "FLORIDA"}},
	{"Things with rings", [4]string{"TREE", "CIRCUS", "PHONE", "BOXING"}},
	{"Things that are pitched", [4]string{"TENT", "IDEA", "BASEBALL", "VOICE"}},
	{"Things you can break", [4]string{"RECORD", "NEWS", "WIND", "BREAD"}},
	{"Things you can run", [4]string{"MARATHON", "ERRANDS", "WATER", "MOUTH"}},
	{"Things you can catch", [4]string{"COLD", "FISH", "FLIGHT", "DRIFT"}},
	{"Things you can draw", [4]string{"PICTURE", "BATH", "ATTENTION", "CONCLUSION"}},
	{"Things you can crack", [4]string{"JOKE", "SAFE", "DAWN", "WHIP"}},
	{"Things you can throw", [4]string{"PARTY", "SHADE", "TOWEL", "PUNCH"}},
	{"Things you can hit", [4]string{"ROAD", "JACKPOT", "BOTTOM", "SNOOZE"}},
	{"Things you can lose", [4]string{"MIND", "TOUCH", "SLEEP", "FACE"}},
	{"Things that flow", [4]string{"RIVER", "TRAFFIC", "CASH", "LAVA"}},
	{"Things that spread", [4]string{"BUTTER", "RUMOR", "FIRE", "DISEASE"}},
	{"Words before \"BOARD\"", [4]string{"SKATE", "CUTTING", "BULLETIN", "CHESS"}},
	{"Words before \"BALL\"", [4]string{"BASKET", "FOOT", "BASE", "CRYSTAL"}},
	{"Words before \"BOOK\"", [4]string{"FACE", "NOTE", "TEXT", "YEAR"}},
	{"Words before \"HOUSE\"", [4]string{"GLASS", "TREE", "DOG", "BIRD"}},
	{"Words before \"LIGHT\"", [4]string{"FLASH", "LIME", "HIGH", "SPOT"}},
	{"Words before \"LINE\"", [4]string{"FINISH", "DEAD", "PUNCH", "BOTTOM"}},
	{"Words before \"WORK\"", [4]string{"FRAME", "NET", "FIRE", "CLOCK"}},
	{"Words after \"FIRE\"", [4]string{"FLY", "WORKS", "PLACE", "CRACKER"}},
	{"Words after \"BLACK\"", [4]string{"JACK", "BIRD", "BERRY", "SMITH"}},
	{"Words after \"COLD\"", [4]string{"WAR", "SHOULDER", "FEET", "TURKEY"}},
	{"Words after \"HONEY\"", [4]string{"MOON", "BEE", "DEW", "COMB"}},
	{"Can follow \"HOME\"", [4]string{"RUN", "WORK", "SICK", "PAGE"}},
	{"___ and cheese", [4]string{"MAC", "WINE", "CRACKERS", "GRILLED"}},
	{"___ Lane", [4]string{"PENNY", "FAST", "MEMORY", "LOIS"}},
	{"_____ Stone", [4]string{"ROLLING", "STEPPING", "KIDNEY", "ROSETTA"}},
	{"___ House", [4]string{"WHITE", "FULL", "HAUNTED", "OPERA"}},
	{"___ Code", [4]string{"ZIP", "DRESS", "MORSE", "CHEAT"}},
	{"___ Party", [4]string{"BLOCK", "SEARCH", "GARDEN", "SLUMBER"}},
	{"___ Man", [4]string{"IRON", "SPIDER", "ANT", "BAT"}},
	{"___ Trip", [4]string{"ROAD", "GUILT", "ROUND", "EGO"}},
	{"Famous Michaels", [4]string{"JACKSON", "JORDAN", "SCOTT", "MYERS"}},
	{"Famous Georges", [4]string{"WASHINGTON", "CLOONEY", "LUCAS", "STRAIT"}},
	{"Famous Bills", [4]string{"GATES", "MURRAY", "CLINTON", "NYE"}},
	{"Famous Toms", [4]string{"HANKS", "CRUISE", "HOLLAND", "PETTY"}},
	{"Famous Johns", [4]string{"LENNON", "WAYNE", "WICK", "LEGEND"}},
	{"Famous Jacks", [4]string{"SPARROW", "NICHOLSON", "BLACK", "KNIFE"}},
	{"Famous Davids", [4]string{"BOWIE", "LETTERMAN", "BECKHAM", "COPPERFIELD"}},
	{"Famous Steves", [4]string{"JOBS", "WONDER", "HARVEY", "CARELL"}},
	{"Last names that are colors", [4]string{"WHITE", "GREEN", "BLACK", "BROWN"}},
	{"Classic rock bands", [4]string{"QUEEN", "KISS", "RUSH", "CREAM"}},
	{"One-word rock bands", [4]string{"BOSTON", "CHICAGO", "KANSAS", "EUROPE"}},
	{"Slang for money", [4]string{"BREAD", "DOUGH", "CHEDDAR", "CABBAGE"}},
	{"Slang for good", [4]string{"SICK", "FIRE", "TIGHT", "FRESH"}},
	{"Things that are golden", [4]string{"GATE", "RETRIEVER", "GIRLS", "STATE"}},
	{"Things that are green", [4]string{"THUMB", "LIGHT", "ROOM", "CARD"}},
	{"Things that are blind", [4]string{"DATE", "SPOT", "FAITH", "SIDE"}},
	{"Things that are sweet", [4]string{"DREAMS", "SIXTEEN", "TOOTH", "TALK"}},
	{"Things that are sharp", [4]string{"KNIFE", "CHEDDAR", "TONGUE", "SHOOTER"}},
	{"Things that are deep", [4]string{"SEA", "STATE", "POCKETS", "FRIED"}},
	{"Things that are dry", [4]string{"HUMOR", "SPELL", "RUN", "CLEANED"}},
	{"Things that are clear", [4]string{"COAST", "AIR", "CONSCIENCE", "CUT"}},
	{"Things that are flat", [4]string{"TIRE", "EARTH", "RATE", "FOOT"}},
	{"Things that are rough", [4]string{"DIAMOND", "DRAFT", "PATCH", "HOUSING"}},
	{"Things that are sticky", [4]string{"SITUATION", "NOTE", "FINGERS", "WICKET"}},
	{"Things that are bitter", [4]string{"TASTE", "END", "SWEET", "PILL"}},
	{"Things with heads", [4]string{"NAIL", "CABBAGE", "SHOWER", "RIVER"}},
	{"Things with teeth", [4]string{"SAW", "COMB", "GEAR", "ZIPPER"}},
	{"Things with hands", [4]string{"CLOCK", "POKER", "SECOND", "FARM"}},
	{"Things with caps", [4]string{"BOTTLE", "KNEE", "MUSHROOM", "GRADUATION"}},
	{"Things with shells", [4]string{"TURTLE", "EGG", "NUT", "TACO"}},
	{"Things with wings", [4]string{"AIRPLANE", "CHICKEN", "ANGEL", "BUFFALO"}},
	{"Things with points", [4]string{"POWER", "BULLET", "TALKING", "COMPASS"}},
	{"Things with roots", [4]string{"TREE", "HAIR", "GRASS", "SQUARE"}},
	{"Things with waves", [4]string{"OCEAN", "HAIR", "HEAT", "RADIO"}},
	{"Words with double letters", [4]string{"BALLOON", "COFFEE", "GIRAFFE", "RACCOON"}},
	{"Compound words with \"SUN\"", [4]string{"FLOWER", "GLASSES", "BURN", "RISE"}},
	{"Words before \"FISH\"", [4]string{"GOLD", "CAT", "JELLY", "STAR"}},
	{"Words before \"BERRY\"", [4]string{"STRAW", "BLUE", "BLACK", "RASP"}},
	{"Words before \"DAY\"", [4]string{"BIRTH", "HOLI", "WEDNES", "HUMP"}},
	{"Words before \"OUT\"", [4]string{"BLACK", "FREAK", "BURN", "WORK"}},
	{"Words before \"BACK\"", [4]string{"QUARTER", "FLASH", "PAPER", "THROW"}},
	{"Words before \"BAND\"", [4]string{"RUBBER", "ROCK", "HEAD", "BROAD"}},
	{"Bond film endings", [4]string{"ROYALE", "SOLACE", "SKYFALL", "SPECTRE"}},
	{"Pixar one-word titles", [4]string{"COCO", "UP", "BRAVE", "CARS"}},
}
