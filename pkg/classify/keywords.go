package classify

// VocabularyVersion identifies the keyword data below. Bump when the tables
// change so stored tags can be traced back to the vocabulary that produced them.
const VocabularyVersion = "2025-08"

var itKeywords = []string{
	"software", "developer", "engineer", "programmer", "react", "angular", "node",
	"java", "python", "php", "devops", "aws", "cloud", "azure", "kubernetes", "docker",
	"data analyst", "ai", "ml", "machine learning", "artificial intelligence",
	"frontend", "backend", "fullstack", "full stack", "tech lead", "architect",
	"cybersecurity", "database", "sql", "nosql", "mongodb", "postgresql",
	"tcs", "infosys", "wipro", "cognizant", "hcl", "tech mahindra", "accenture",
	"google", "microsoft", "amazon", "meta", "facebook", "apple", "netflix",
	"startup", "saas", "fintech", "edtech", "healthtech", "api",
	"vue", "typescript", "javascript", "golang", "rust", "scala",
}

var govtKeywords = []string{
	"ssc", "upsc", "rrb", "ibps", "ministry", "department", "psc", "kpsc", "mpsc",
	"uppsc", "bpsc", "rpsc", "gpsc", "wbpsc", "tnpsc", "notification",
	"recruitment board", "central government", "state government", "govt",
	"loksabha", "rajyasabha", "secretary", "commissioner", "collector",
	"district", "state level", "central level", "public service commission",
}

var bankKeywords = []string{
	"bank", "po", "clerk", "officer", "rbi", "sbi", "ibps", "nabard", "sidbi",
	"bank of india", "bank of baroda", "canara bank", "pnb", "axis bank",
	"hdfc bank", "icici bank", "kotak", "yes bank", "idbi", "uco bank",
	"indian bank", "union bank", "bob", "banking", "probationary officer",
	"specialist officer", "credit officer", "rural banking",
}

var railwayKeywords = []string{
	"railway", "rrb", "ntpc", "alp", "group d", "je", "sse", "loco pilot",
	"technician", "rpf", "rpsf", "irctc", "indian railways",
	"rail", "train", "station master", "ticket collector",
	"northern railway", "southern railway", "eastern railway", "western railway",
	"central railway", "metro", "dmrc", "bmrc", "cmrl", "nmrc",
}

var policeKeywords = []string{
	"police", "constable", "sub inspector", "asi", "head constable",
	"inspector", "dsp", "ips", "crpf", "bsf", "cisf", "itbp", "ssb",
	"paramilitary", "defence", "army", "navy", "air force", "coast guard",
	"nda", "cds", "afcat", "capf", "security force", "home guard",
}

var psuKeywords = []string{
	"psu", "public sector", "ntpc", "ongc", "iocl", "bpcl", "hpcl", "gail",
	"bhel", "bel", "hal", "sail", "coal india", "power grid", "nhpc",
	"oil india", "drdo", "isro", "barc", "npcil", "pgcil", "eil",
	"ircon", "rites", "concor", "nmdc", "nalco", "beml",
}

var teachingKeywords = []string{
	"teacher", "faculty", "professor", "lecturer", "tgt", "pgt", "prt",
	"assistant professor", "associate professor", "kvs", "nvs", "kendriya vidyalaya",
	"navodaya", "cbse", "ctet", "tet", "stet",
	"university", "college", "school", "education", "principal", "headmaster",
	"tutor", "educator", "academic", "teaching assistant",
}

var resultKeywords = []string{
	"result", "declared", "scorecard", "mark sheet", "cut off", "cutoff",
	"merit list", "qualified",
}

var admitCardKeywords = []string{
	"admit card", "hall ticket", "call letter", "download admit", "exam date",
}

// jobSignalKeywords: at least one must be present for a listing from an
// ambiguous (news-feed) source to be considered a job posting at all.
var jobSignalKeywords = []string{
	"recruitment", "vacancy", "hiring", "apply", "admit", "result",
	"notification", "jobs", "posts", "career", "opening", "examination",
}

// newsNoiseKeywords rejects general-news articles that leak into job feeds
var newsNoiseKeywords = []string{
	"modi", "gandhi", "politics", "election", "viral", "opinion", "arrest",
	"dead", "death", "accident", "ipl", "cricket", "bollywood", "movie",
	"killed", "protest", "strike", "murder", "scam", "fraud", "fake", "hoax",
	"rumor", "entertainment", "celebrity", "gossip", "lifestyle", "fashion",
	"recipe", "travel blog",
}

var popularSkills = []string{
	"Java", "Python", "JavaScript", "TypeScript", "Go", "React", "Angular",
	"Node.js", "SQL", "MongoDB", "PostgreSQL", "AWS", "Azure", "Docker",
	"Kubernetes", "DevOps", "Machine Learning", "Data Science", "Spring Boot",
	"Django", "PHP", "C++", "C#", ".NET", "Flutter", "Android", "iOS",
}

var qualificationMap = map[string]string{
	"btech":         "B.Tech",
	"mtech":         "M.Tech",
	"graduate":      "Any Graduate",
	"degree":        "Any Degree",
	"post graduate": "Post Graduate",
	"10th":          "10th Pass",
	"12th":          "12th Pass",
	"iti":           "ITI",
	"diploma":       "Diploma",
	"mba":           "MBA",
	"mca":           "MCA",
	"bcom":          "B.Com",
	"bsc":           "B.Sc",
	"mbbs":          "MBBS",
	"phd":           "Ph.D",
}

var indianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
	"Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
	"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Delhi", "Jammu and Kashmir", "Ladakh", "Chandigarh", "Puducherry",
}

// cityState maps major cities to their state label
var cityState = map[string]string{
	"Mumbai":     "Maharashtra",
	"Pune":       "Maharashtra",
	"Nagpur":     "Maharashtra",
	"Nashik":     "Maharashtra",
	"Bangalore":  "Karnataka",
	"Bengaluru":  "Karnataka",
	"Mysore":     "Karnataka",
	"Hyderabad":  "Telangana",
	"Chennai":    "Tamil Nadu",
	"Madurai":    "Tamil Nadu",
	"Coimbatore": "Tamil Nadu",
	"Kolkata":    "West Bengal",
	"Howrah":     "West Bengal",
	"Delhi":      "Delhi NCR",
	"Noida":      "Delhi NCR",
	"Gurgaon":    "Delhi NCR",
	"Gurugram":   "Delhi NCR",
	"Faridabad":  "Delhi NCR",
	"Ghaziabad":  "Delhi NCR",
	"Jaipur":     "Rajasthan",
	"Lucknow":    "Uttar Pradesh",
	"Kanpur":     "Uttar Pradesh",
	"Varanasi":   "Uttar Pradesh",
	"Indore":     "Madhya Pradesh",
	"Bhopal":     "Madhya Pradesh",
	"Patna":      "Bihar",
	"Ahmedabad":  "Gujarat",
	"Vadodara":   "Gujarat",
	"Ranchi":     "Jharkhand",
	"Amritsar":   "Punjab",
	"Ludhiana":   "Punjab",
}

// aggregatorOrganizations lists generic news-aggregator names that must never
// stand as a job's organization; the cleanup sweep rewrites them.
var aggregatorOrganizations = []string{
	"Times of India Jobs",
	"Hindustan Times",
	"Zee News Employment",
	"Indian Express Jobs",
	"India Today Education",
	"HT Jobs",
	"TOI Jobs",
	"Financial Express",
	"IndiaTV Education",
}

// officialDomains whitelists apply links considered authoritative
var officialDomains = []string{
	".gov.in", ".nic.in", ".res.in", ".ac.in", ".edu.in", "ibps.in",
	"rbi.org.in", "sbi.co.in", "licindia.in", "upsc.gov.in", "ssc.nic.in",
	"indianrailways.gov.in", "drdo.gov.in", "isro.gov.in",
	"joinindianarmy.nic.in", "joinindiannavy.gov.in", "indianairforce.nic.in",
}

// newsDomains: link candidates on these hosts are never the official
// notification, only coverage of it.
var newsDomains = []string{
	"timesofindia", "indiatimes", "hindustantimes", "jagranjosh", "careerindia",
	"indiatoday", "shiksha.com", "collegedunia.com", "sarkariresult",
	"freejobalert", "fresherslive", "ambitionbox", "glassdoor", "naukri.com",
	"indiatvnews", "facebook.com", "twitter.com", "t.me", "google.com",
	"whatsapp.com", "youtube.com", "linkedin.com", "instagram.com",
	"employmentnews", "india.com", "moneycontrol", "ndtv", "news18", "zeenews",
}
