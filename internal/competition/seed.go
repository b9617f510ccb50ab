package competition

var seedTypes = []CompetitionType{
	{ID: "esports", Name: "Esports", Icon: "gamepad", Color: "purple"},
	{ID: "hackathon", Name: "Hackathon", Icon: "code", Color: "blue"},
	{ID: "creative", Name: "Creative", Icon: "palette", Color: "pink"},
	{ID: "sports", Name: "Sports", Icon: "trophy", Color: "green"},
	{ID: "trading", Name: "Trading", Icon: "trending-up", Color: "yellow"},
	{ID: "defi", Name: "DeFi", Icon: "coins", Color: "indigo"},
}

var seedStats = ProtocolStats{
	TVL:                 "$2.4M",
	ActiveCompetitions:  127,
	TotalPrizes:         "$850K",
	MonthlyParticipants: 12847,
	TVLChange:           12.5,
	CompetitionsChange:  8.3,
	PrizesChange:        15.2,
	ParticipantsChange:  22.1,
}

func intPtr(v int) *int { return &v }

var seedCompetitions = []Competition{
	{
		ID:                 "1",
		Title:              "Global Esports Championship 2024",
		Description:        "The biggest esports tournament of the year featuring top teams from around the world competing in multiple game titles.",
		Type:               seedTypes[0],
		PrizePool:          PrizePool{Amount: "50,000", Token: "USDC", Symbol: "USDC"},
		Participants:       1247,
		MaxParticipants:    intPtr(2000),
		TimeRemaining:      TimeRemaining{Days: 15, Hours: 6, Minutes: 32},
		Status:             StatusActive,
		VerificationMethod: VerificationOracle,
		EntryFee:           &EntryFee{Amount: "25", Token: "USDC"},
		Creator:            "0x1234...abcd",
		StartDate:          "2024-01-15T10:00:00Z",
		EndDate:            "2024-02-15T20:00:00Z",
	},
	{
		ID:                 "2",
		Title:              "DeFi Innovation Hackathon",
		Description:        "Build the next generation of decentralized finance protocols. Open to developers worldwide.",
		Type:               seedTypes[1],
		PrizePool:          PrizePool{Amount: "25,000", Token: "ETH", Symbol: "ETH"},
		Participants:       523,
		TimeRemaining:      TimeRemaining{Days: 8, Hours: 14, Minutes: 18},
		Status:             StatusActive,
		VerificationMethod: VerificationManual,
		Creator:            "0x5678...efgh",
		StartDate:          "2024-01-20T00:00:00Z",
		EndDate:            "2024-02-10T23:59:59Z",
	},
	{
		ID:                 "3",
		Title:              "NFT Art Contest - Digital Renaissance",
		Description:        "Showcase your artistic talent in the digital realm. Create stunning NFT artwork with innovative themes.",
		Type:               seedTypes[2],
		PrizePool:          PrizePool{Amount: "10,000", Token: "USDC", Symbol: "USDC"},
		Participants:       847,
		TimeRemaining:      TimeRemaining{Days: 2, Hours: 11, Minutes: 45},
		Status:             StatusActive,
		VerificationMethod: VerificationHybrid,
		Creator:            "0x9abc...ijkl",
		StartDate:          "2024-01-10T12:00:00Z",
		EndDate:            "2024-01-30T12:00:00Z",
	},
	{
		ID:                 "4",
		Title:              "Crypto Trading Championship",
		Description:        "Prove your trading skills in this high-stakes competition. Best performers over 30 days win.",
		Type:               seedTypes[4],
		PrizePool:          PrizePool{Amount: "75,000", Token: "USDT", Symbol: "USDT"},
		Participants:       2156,
		MaxParticipants:    intPtr(5000),
		TimeRemaining:      TimeRemaining{Days: 23, Hours: 8, Minutes: 12},
		Status:             StatusActive,
		VerificationMethod: VerificationAPI,
		EntryFee:           &EntryFee{Amount: "100", Token: "USDT"},
		Creator:            "0xdef0...mnop",
		StartDate:          "2024-01-01T00:00:00Z",
		EndDate:            "2024-01-31T23:59:59Z",
	},
	{
		ID:                 "5",
		Title:              "Web3 Gaming Tournament",
		Description:        "Battle it out in the latest blockchain games. Multiple game modes and epic rewards await.",
		Type:               seedTypes[0],
		PrizePool:          PrizePool{Amount: "15,000", Token: "USDC", Symbol: "USDC"},
		Participants:       634,
		TimeRemaining:      TimeRemaining{},
		Status:             StatusEnded,
		VerificationMethod: VerificationOracle,
		Creator:            "0x1111...2222",
		StartDate:          "2024-01-01T10:00:00Z",
		EndDate:            "2024-01-15T20:00:00Z",
	},
	{
		ID:                 "6",
		Title:              "Yield Farming Strategy Contest",
		Description:        "Design and implement the most profitable yield farming strategies across multiple DeFi protocols.",
		Type:               seedTypes[5],
		PrizePool:          PrizePool{Amount: "30,000", Token: "DAI", Symbol: "DAI"},
		Participants:       0,
		TimeRemaining:      TimeRemaining{Days: 45, Hours: 12, Minutes: 30},
		Status:             StatusUpcoming,
		VerificationMethod: VerificationHybrid,
		EntryFee:           &EntryFee{Amount: "50", Token: "DAI"},
		Creator:            "0x3333...4444",
		StartDate:          "2024-02-15T00:00:00Z",
		EndDate:            "2024-03-15T23:59:59Z",
	},
	{
		ID:                 "7",
		Title:              "Marathon Virtual Race Series",
		Description:        "Global virtual marathon with real-time tracking and leaderboards. Run from anywhere in the world.",
		Type:               seedTypes[3],
		PrizePool:          PrizePool{Amount: "8,000", Token: "USDC", Symbol: "USDC"},
		Participants:       1523,
		TimeRemaining:      TimeRemaining{Days: 12, Hours: 16, Minutes: 42},
		Status:             StatusActive,
		VerificationMethod: VerificationAPI,
		EntryFee:           &EntryFee{Amount: "10", Token: "USDC"},
		Creator:            "0x5555...6666",
		StartDate:          "2024-01-18T06:00:00Z",
		EndDate:            "2024-02-18T18:00:00Z",
	},
	{
		ID:                 "8",
		Title:              "Smart Contract Security Audit",
		Description:        "Find vulnerabilities in smart contracts and help make DeFi more secure. Bug bounty style competition.",
		Type:               seedTypes[1],
		PrizePool:          PrizePool{Amount: "40,000", Token: "ETH", Symbol: "ETH"},
		Participants:       234,
		TimeRemaining:      TimeRemaining{},
		Status:             StatusDisputed,
		VerificationMethod: VerificationManual,
		Creator:            "0x7777...8888",
		StartDate:          "2024-01-05T00:00:00Z",
		EndDate:            "2024-01-25T23:59:59Z",
	},
}

// Types returns the competition type lookup table.
func Types() []CompetitionType {
	out := make([]CompetitionType, len(seedTypes))
	copy(out, seedTypes)
	return out
}

// TypeByID looks up a type by id.
func TypeByID(id string) (CompetitionType, bool) {
	for _, t := range seedTypes {
		if t.ID == id {
			return t, true
		}
	}
	return CompetitionType{}, false
}

// Seed returns the static dataset. Each call returns fresh copies.
func Seed() []Competition {
	out := make([]Competition, len(seedCompetitions))
	for i, c := range seedCompetitions {
		out[i] = c.Clone()
	}
	return out
}

// Stats returns the protocol-wide summary tiles.
func Stats() ProtocolStats {
	return seedStats
}
