package classifier

// overrideTable binds every written form of an action word to its rules.
type overrideTable struct {
	forms []string
	rules RuleSet
}

// DefaultOverrides returns the curated per-word rule sets keyed by each
// written form (kanji and kana) of the high-frequency action words.
func DefaultOverrides() map[string]RuleSet {
	m := make(map[string]RuleSet)
	for _, t := range overrideTables() {
		for _, f := range t.forms {
			m[f] = t.rules
		}
	}
	return m
}

// DefaultGlobal returns the shared rule set used for action words without
// an override table.
func DefaultGlobal() RuleSet {
	return NewRuleSet("",
		rule(10, "people involved", "person", "people", "man", "woman", "child", "boy", "girl", "teacher", "student", "friend", "family"),
		rule(20, "places and locations", "place", "room", "house", "building", "school", "company", "shop", "store", "park", "station"),
		rule(30, "time expressions", "time", "day", "week", "month", "year", "morning", "evening", "night", "hour", "minute"),
		rule(40, "everyday objects", "book", "pen", "paper", "bag", "phone", "computer", "tool"),
		rule(50, "activities and practice", "work", "study", "practice", "exercise", "sport", "game", "play"),
		rule(60, "food and drink", "food", "meal", "rice", "bread", "meat", "fish", "vegetable", "fruit", "water", "tea", "coffee"),
		rule(70, "weather and nature", "weather", "rain", "snow", "wind", "sky", "sea", "mountain", "river", "tree", "flower"),
		rule(80, "body and health", "body", "head", "hand", "foot", "eye", "face", "health", "illness", "sickness", "cold"),
		rule(90, "feelings and moods", "feeling", "mood", "heart", "mind", "spirit", "interest"),
	)
}

func overrideTables() []overrideTable {
	return []overrideTable{
		{[]string{"する", "為る"}, NewRuleSet("various activities",
			rule(10, "work and study", "work", "job", "task", "business", "assignment", "labor", "labour", "homework"),
			rule(20, "work and study", "study", "learning", "research", "investigation"),
			rule(30, "household chores", "cooking", "cleaning", "laundry", "wash", "washing"),
			rule(40, "physical activities", "exercise", "sport", "tennis", "judo", "swimming", "practice", "training"),
			rule(50, "communication acts", "talk", "question", "conversation", "explanation", "chat", "consultation", "greeting", "introduction"),
			rule(60, "preparations you make", "preparation", "ready", "arrangement"),
			rule(70, "life milestones", "marriage", "wedding", "graduation", "admission", "entrance", "hospitalization", "discharge"),
			rule(80, "errands and outings", "shopping", "errand", "trip", "travel", "walk", "stroll"),
			rule(90, "planning activities", "plan", "schedule", "reservation", "booking", "meeting", "conference"),
			rule(100, "competitions and tests", "test", "exam", "examination", "match", "game", "competition", "contest"),
			rule(110, "experiences and attempts", "experience", "attempt", "try", "failure", "mistake"),
			rule(120, "mental states", "worry", "concern", "relief", "attention", "care", "focus"),
			rule(130, "social courtesies", "invitation", "hospitality", "treat", "courtesy", "politeness", "thanks", "gratitude", "celebration"),
			rule(140, "using and checking", "use", "usage", "utilization", "check", "inspection"),
			rule(150, "business operations", "import", "export", "trade", "production", "broadcast"),
			rule(160, "conflicts and quarrels", "fight", "quarrel", "argument", "opposition", "objection"),
		)},
		{[]string{"飲む", "のむ"}, NewRuleSet("things you drink",
			rule(10, "everyday drinks", "water", "tea", "coffee", "juice", "milk"),
			rule(20, "medicine you swallow", "medicine", "pill", "tablet", "drug", "vitamin"),
			rule(30, "alcoholic drinks", "alcohol", "sake", "beer", "wine", "liquor"),
			rule(40, "liquid foods", "soup", "broth"),
		)},
		{[]string{"食べる", "たべる"}, NewRuleSet("foods you eat",
			rule(10, "staple foods", "bread", "rice", "noodle", "meal"),
			rule(20, "main ingredients", "fish", "meat", "vegetable", "egg"),
			rule(30, "fruits and sweets", "fruit", "apple", "banana", "sweet", "cake", "candy", "dessert"),
			rule(40, "daily meals", "breakfast", "lunch", "dinner", "supper"),
			rule(50, "japanese dishes", "sushi", "tempura", "ramen", "udon", "soba"),
		)},
		{[]string{"行く", "いく", "ゆく"}, NewRuleSet("places you visit",
			rule(10, "study destinations", "school", "university", "college", "library", "class"),
			rule(20, "work and errands", "company", "office", "bank", "post", "shop", "store"),
			rule(30, "leisure spots", "sea", "beach", "mountain", "park", "garden"),
			rule(40, "health facilities", "hospital", "doctor", "clinic", "pharmacy"),
			rule(50, "transportation hubs", "station", "airport", "bus", "train"),
			rule(60, "eating places", "restaurant", "cafe", "bar"),
			rule(70, "home and rooms", "home", "house", "room", "place"),
			rule(80, "countries and abroad", "country", "abroad", "foreign", "overseas", "america", "japan"),
			rule(90, "entertainment venues", "movie", "theater", "cinema", "concert"),
			rule(100, "facilities to use", "bathroom", "toilet", "restroom"),
		)},
		{[]string{"いる", "居る"}, NewRuleSet("living beings",
			rule(10, "family members", "mother", "father", "parent", "child", "son", "daughter", "brother", "sister", "family", "grandfather", "grandmother"),
			rule(20, "people at school", "teacher", "student", "pupil", "professor"),
			rule(30, "company positions", "president", "manager", "director", "boss", "employee", "staff"),
			rule(40, "close relationships", "friend", "lover", "boyfriend", "girlfriend", "companion"),
			rule(50, "medical people", "doctor", "nurse", "patient"),
			rule(60, "where people are", "home", "house", "room", "school", "company", "place"),
			rule(70, "types of people", "man", "woman", "boy", "girl", "person", "people", "baby", "adult"),
			rule(80, "animals and pets", "cat", "dog", "animal", "bird", "pet"),
		)},
		{[]string{"ある", "有る", "在る"}, NewRuleSet("things that exist",
			rule(10, "available time", "time", "leisure", "free", "spare"),
			rule(20, "causes and reasons", "reason", "cause", "excuse"),
			rule(30, "issues to solve", "problem", "question", "trouble", "difficulty", "issue"),
			rule(40, "useful places", "shop", "store", "bank", "post", "restaurant", "hospital", "school"),
			rule(50, "objects in rooms", "desk", "chair", "table", "bed", "book", "pen", "paper"),
			rule(60, "interests and hobbies", "interest", "hobby", "concern"),
			rule(70, "money you have", "money", "yen", "dollar", "cash"),
			rule(80, "plans and appointments", "appointment", "plan", "schedule", "meeting"),
			rule(90, "meaning and value", "meaning", "significance", "value", "importance"),
			rule(100, "differences and gaps", "difference", "distinction", "gap"),
			rule(110, "connections and relations", "relationship", "connection", "relation"),
		)},
		{[]string{"見る", "みる"}, NewRuleSet("things you observe",
			rule(10, "entertainment to watch", "tv", "television", "movie", "film", "program", "show", "video"),
			rule(20, "natural scenery", "sea", "ocean", "mountain", "sky", "star", "moon", "scenery", "view"),
			rule(30, "live events", "match", "game", "sport", "competition"),
			rule(40, "pages to look over", "book", "newspaper", "magazine", "letter", "document"),
			rule(50, "dreams you have", "dream", "nightmare"),
			rule(60, "medical checkups", "doctor", "dentist"),
			rule(70, "visual art", "picture", "photo", "image", "painting"),
		)},
		{[]string{"買う", "かう"}, NewRuleSet("things to purchase",
			rule(10, "clothing to buy", "clothes", "shirt", "shoe", "hat", "jacket", "dress", "pants"),
			rule(20, "reading materials", "book", "magazine", "newspaper", "dictionary"),
			rule(30, "grocery shopping", "food", "vegetable", "meat", "fish", "fruit", "bread", "rice"),
			rule(40, "expensive purchases", "car", "house", "apartment", "land"),
			rule(50, "gifts for others", "present", "gift", "flower", "souvenir"),
			rule(60, "tickets and stamps", "ticket", "stamp"),
			rule(70, "electronics and gadgets", "camera", "computer", "phone", "watch"),
		)},
		{[]string{"読む", "よむ"}, NewRuleSet("written materials",
			rule(10, "books to read", "book", "novel", "story", "textbook"),
			rule(20, "news and articles", "newspaper", "article", "news"),
			rule(30, "magazines and comics", "magazine", "comic", "manga"),
			rule(40, "letters and messages", "letter", "mail", "email", "message"),
			rule(50, "documents and reports", "document", "report", "paper"),
			rule(60, "poetry and verse", "poem", "poetry"),
		)},
		{[]string{"書く"}, NewRuleSet("things you write",
			rule(10, "letters and cards", "letter", "mail", "email", "card", "postcard"),
			rule(20, "personal information", "name", "address", "phone", "number"),
			rule(30, "academic writing", "report", "paper", "thesis", "essay"),
			rule(40, "personal journals", "diary", "journal", "blog"),
			rule(50, "creative writing", "novel", "story", "book", "poem"),
			rule(60, "characters to write", "character", "kanji", "hiragana", "katakana"),
		)},
		{[]string{"聞く", "きく"}, NewRuleSet("things you hear",
			rule(10, "music to enjoy", "music", "song", "melody"),
			rule(20, "audio programs", "radio", "podcast", "broadcast"),
			rule(30, "spoken stories", "story", "tale", "talk", "speech"),
			rule(40, "news and info", "news", "information", "report"),
			rule(50, "questions you ask", "question", "inquiry"),
			rule(60, "sounds you hear", "voice", "sound", "noise"),
			rule(70, "advice and opinions", "opinion", "advice", "suggestion"),
			rule(80, "people you ask", "teacher", "parent", "friend", "person"),
		)},
		{[]string{"話す", "はなす"}, NewRuleSet("topics you discuss",
			rule(10, "languages you speak", "japanese", "english", "chinese", "language", "french", "spanish"),
			rule(20, "stories you tell", "story", "tale", "experience"),
			rule(30, "what you reveal", "truth", "lie", "secret"),
			rule(40, "people you talk to", "teacher", "friend", "parent", "person", "doctor"),
			rule(50, "phone conversations", "phone", "telephone"),
		)},
		{[]string{"来る", "くる"}, NewRuleSet("things approaching",
			rule(10, "arriving at home", "home", "house", "room", "place"),
			rule(20, "work and study", "school", "company", "office"),
			rule(30, "places and countries", "japan", "country", "city", "town"),
			rule(40, "people arriving", "friend", "person", "guest", "visitor"),
			rule(50, "seasons arriving", "spring", "summer", "winter", "fall", "autumn", "season"),
			rule(60, "time arriving", "time", "moment", "day"),
		)},
		{[]string{"出る", "でる"}, NewRuleSet("emerging from places",
			rule(10, "places you exit", "home", "house", "room", "building"),
			rule(20, "graduating from school", "university", "school", "college"),
			rule(30, "exit points", "station", "exit", "entrance"),
			rule(40, "going outdoors", "outside", "outdoors"),
			rule(50, "appearing on tests", "test", "exam", "question"),
			rule(60, "appearing in media", "tv", "show", "program", "movie"),
		)},
		{[]string{"入る", "はいる"}, NewRuleSet("entering places",
			rule(10, "rooms to enter", "room", "house", "home", "building"),
			rule(20, "enrolling in", "university", "school", "college", "company"),
			rule(30, "baths and springs", "bath", "shower", "hot spring", "onsen"),
			rule(40, "hospital stays", "hospital", "clinic"),
			rule(50, "shops and restaurants", "shop", "store", "restaurant", "cafe"),
		)},
		{[]string{"会う"}, NewRuleSet("people you encounter",
			rule(10, "friends you meet", "friend", "companion", "acquaintance"),
			rule(20, "family gatherings", "family", "mother", "father", "parent", "brother", "sister"),
			rule(30, "professionals you see", "teacher", "professor", "doctor"),
			rule(40, "romantic meetings", "lover", "boyfriend", "girlfriend"),
			rule(50, "people you meet", "person", "people", "someone"),
			rule(60, "encountering problems", "accident", "trouble", "problem"),
		)},
		{[]string{"作る", "つくる", "造る"}, NewRuleSet("things you create",
			rule(10, "dishes to cook", "food", "dish", "meal", "cooking", "cuisine", "rice", "bread"),
			rule(20, "relationships formed", "friend", "companion", "relationship"),
			rule(30, "plans you create", "plan", "schedule", "program"),
			rule(40, "creative works", "art", "work", "piece", "product"),
			rule(50, "organizations founded", "company", "organization", "group", "club"),
			rule(60, "making time", "time", "opportunity", "chance"),
		)},
		{[]string{"使う", "つかう"}, NewRuleSet("things you utilize",
			rule(10, "electronic devices", "computer", "phone", "camera", "machine", "device"),
			rule(20, "languages in use", "japanese", "english", "language", "word"),
			rule(30, "spending money", "money", "yen", "dollar", "cash"),
			rule(40, "spending time", "time", "hour", "minute"),
			rule(50, "utensils and tools", "chopstick", "fork", "knife", "tool"),
			rule(60, "using your mind", "head", "brain", "mind"),
		)},
		{[]string{"持つ", "もつ"}, NewRuleSet("things you possess",
			rule(10, "bags you carry", "bag", "umbrella", "luggage", "package"),
			rule(20, "valuables kept", "money", "cash", "card", "ticket"),
			rule(30, "everyday belongings", "phone", "camera", "pen", "book"),
			rule(40, "feelings you have", "interest", "concern", "feeling", "opinion"),
			rule(50, "abilities possessed", "ability", "power", "strength", "skill"),
			rule(60, "problems you face", "problem", "trouble", "worry"),
		)},
		{[]string{"待つ", "まつ"}, NewRuleSet("things awaited",
			rule(10, "people you wait for", "friend", "person", "people", "lover", "family"),
			rule(20, "transport you wait for", "bus", "train", "taxi", "elevator"),
			rule(30, "waiting for timing", "time", "moment", "day", "chance", "opportunity"),
			rule(40, "awaiting results", "result", "answer", "reply", "response"),
		)},
		{[]string{"乗る", "のる"}, NewRuleSet("things you board",
			rule(10, "trains and rails", "train", "subway", "rail"),
			rule(20, "road vehicles", "bus", "taxi", "car", "vehicle"),
			rule(30, "air travel", "airplane", "plane", "flight"),
			rule(40, "water transport", "ship", "boat", "ferry"),
			rule(50, "two-wheeled rides", "bicycle", "bike", "motorcycle"),
			rule(60, "animals to ride", "horse", "animal"),
		)},
		{[]string{"着る"}, NewRuleSet("garments worn",
			rule(10, "upper body wear", "clothes", "clothing", "shirt", "jacket", "coat", "dress", "sweater"),
			rule(20, "traditional clothing", "kimono", "yukata"),
			rule(30, "formal attire", "uniform", "suit"),
		)},
		{[]string{"開ける", "あける"}, NewRuleSet("things you open",
			rule(10, "doors and gates", "door", "gate", "entrance"),
			rule(20, "windows to open", "window"),
			rule(30, "boxes and containers", "box", "package", "container", "bag"),
			rule(40, "your eyes", "eye"),
			rule(50, "your mouth", "mouth"),
			rule(60, "books opened", "book", "page"),
		)},
		{[]string{"教える", "おしえる"}, NewRuleSet("knowledge conveyed",
			rule(10, "languages taught", "japanese", "english", "language", "chinese"),
			rule(20, "school subjects", "math", "mathematics", "science", "history", "subject"),
			rule(30, "methods explained", "way", "method", "how"),
			rule(40, "information shared", "address", "phone", "number", "place", "location"),
			rule(50, "students taught", "student", "child", "person"),
		)},
		{[]string{"習う", "ならう"}, NewRuleSet("skills acquired",
			rule(10, "languages learned", "japanese", "english", "language", "chinese"),
			rule(20, "musical instruments", "piano", "guitar", "music", "instrument"),
			rule(30, "dance and movement", "dance", "dancing", "ballet"),
			rule(40, "culinary skills", "cooking", "cuisine"),
			rule(50, "artistic skills", "art", "painting", "drawing"),
			rule(60, "martial arts", "martial", "judo", "karate"),
		)},
		{[]string{"借りる", "かりる"}, NewRuleSet("things borrowed",
			rule(10, "library materials", "book", "dictionary", "magazine"),
			rule(20, "money borrowed", "money", "yen", "dollar", "cash"),
			rule(30, "places rented", "room", "house", "apartment"),
			rule(40, "stationery borrowed", "pen", "pencil", "eraser", "tool"),
			rule(50, "media borrowed", "video", "dvd", "cd", "movie"),
		)},
		{[]string{"送る", "おくる"}, NewRuleSet("things dispatched",
			rule(10, "mail sent", "letter", "mail", "postcard", "card"),
			rule(20, "digital messages", "email", "message", "text"),
			rule(30, "gifts sent", "present", "gift", "flower"),
			rule(40, "packages shipped", "package", "parcel", "box"),
			rule(50, "escorting people", "person", "friend", "family"),
			rule(60, "spending your days", "life", "time", "day"),
		)},
		{[]string{"取る"}, NewRuleSet("things taken",
			rule(10, "photos taken", "photo", "picture", "photograph"),
			rule(20, "breaks taken", "rest", "break", "vacation", "holiday"),
			rule(30, "making contact", "contact", "communication", "touch"),
			rule(40, "growing older", "age", "year", "old"),
			rule(50, "meals taken", "meal", "food", "breakfast", "lunch", "dinner"),
			rule(60, "notes taken", "note", "memo", "record"),
			rule(70, "grasping objects", "hand", "hold", "grab"),
		)},
		{[]string{"住む", "すむ"}, NewRuleSet("places of residence",
			rule(10, "types of housing", "house", "home", "apartment", "condominium"),
			rule(20, "locations lived", "tokyo", "japan", "country", "city", "town"),
			rule(30, "residential areas", "place", "area", "region"),
		)},
		{[]string{"働く", "はたらく"}, NewRuleSet("employment places",
			rule(10, "companies you work for", "company", "firm", "corporation"),
			rule(20, "public institutions", "bank", "hospital", "school", "university"),
			rule(30, "places of work", "factory", "plant", "office"),
			rule(40, "working abroad", "foreign", "abroad", "overseas", "country"),
		)},
		{[]string{"あげる", "上げる"}, NewRuleSet("things given",
			rule(10, "gifts given", "present", "gift", "souvenir"),
			rule(20, "flowers given", "flower", "bouquet"),
			rule(30, "money given", "money", "cash", "yen", "dollar"),
			rule(40, "help given", "help", "assistance", "advice"),
			rule(50, "treats given", "candy", "chocolate", "food"),
		)},
		{[]string{"もらう", "貰う"}, NewRuleSet("things received",
			rule(10, "gifts received", "present", "gift", "souvenir"),
			rule(20, "money received", "money", "cash", "yen", "dollar", "salary"),
			rule(30, "mail received", "letter", "mail", "email", "message"),
			rule(40, "help received", "help", "assistance", "advice"),
			rule(50, "permissions granted", "permission", "approval"),
		)},
		{[]string{"大きい", "おおきい"}, NewRuleSet("what is big",
			rule(10, "buildings and places", "house", "building", "city", "town", "room", "country", "school"),
			rule(20, "sounds and voices", "voice", "sound", "noise"),
			rule(30, "body and size", "body", "hand", "eye", "head", "size"),
			rule(40, "problems and changes", "problem", "change", "difference", "accident", "earthquake"),
		)},
		{[]string{"高い", "たかい"}, NewRuleSet("what is high",
			rule(10, "prices and costs", "price", "cost", "fee", "ticket", "rent"),
			rule(20, "tall structures", "mountain", "building", "tower", "tree", "ceiling", "wall"),
			rule(30, "temperature readings", "temperature", "fever"),
			rule(40, "voice pitch", "voice", "sound"),
			rule(50, "height of people", "height", "person", "man", "woman"),
		)},
		{[]string{"新しい", "あたらしい"}, NewRuleSet("what is new",
			rule(10, "new belongings", "car", "shoe", "clothes", "bag", "phone", "computer", "book"),
			rule(20, "new places", "house", "building", "shop", "store", "school", "room"),
			rule(30, "new ideas", "idea", "plan", "method", "way", "information", "news"),
			rule(40, "new people", "friend", "teacher", "student", "person", "employee"),
		)},
		{[]string{"好き", "すき"}, NewRuleSet("what you like",
			rule(10, "favorite foods", "food", "fruit", "meat", "fish", "sweet", "cake", "dish"),
			rule(20, "favorite pastimes", "music", "song", "movie", "sport", "game", "book", "reading"),
			rule(30, "people you love", "person", "friend", "family", "lover"),
			rule(40, "favorite colors", "color", "colour", "red", "blue", "white", "black"),
		)},
	}
}
