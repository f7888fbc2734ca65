// Package catalog 启动时的静态种子数据，每次调用返回新的副本
package catalog

import (
	"time"

	"Rozi/model"
)

// Seed 一次完整的种子
type Seed struct {
	Communities     []model.Community
	Proposals       []model.Proposal
	LendingRequests []model.LendingRequest
	Gigs            []model.Gig
	Transactions    []model.Transaction
	Profile         model.Profile
	Benefits        []model.Benefit
	ImportSources   []model.ImportSource
}

// Load 返回全新的种子，调用方可以随意修改
func Load() Seed {
	return Seed{
		Communities:     Communities(),
		Proposals:       Proposals(),
		LendingRequests: LendingRequests(),
		Gigs:            Gigs(),
		Transactions:    Transactions(),
		Profile:         Profile(),
		Benefits:        Benefits(),
		ImportSources:   ImportSources(),
	}
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func Communities() []model.Community {
	return []model.Community{
		{ID: "plumbers", Name: "Plumbers of Bangalore", Members: 234, Icon: "🔧"},
		{ID: "urban", Name: "Urban Company Partners", Members: 1678, Icon: "🏙️"},
		{ID: "handymen", Name: "Handymen Network", Members: 1456, Icon: "🛠️"},
		{ID: "electricians", Name: "Electricians United", Members: 345, Icon: "⚡"},
	}
}

func Proposals() []model.Proposal {
	return []model.Proposal{
		{
			ID:              1,
			Title:           "Implement Micro-Insurance for Gig Workers",
			Description:     "Introduce a micro-insurance program to provide basic health and accident coverage for all registered gig workers on the platform.",
			CommunityID:     "urban",
			YesVotes:        1500,
			NoVotes:         500,
			Deadline:        date("2024-12-31"),
			UserVotingPower: 100,
		},
		{
			ID:              2,
			Title:           "Expand Platform to Rural Areas",
			Description:     "Develop strategies and allocate resources to expand the Rozi platform's reach to rural areas, focusing on agricultural and cottage industry gig work.",
			CommunityID:     "handymen",
			YesVotes:        2000,
			NoVotes:         800,
			Deadline:        date("2024-11-30"),
			UserVotingPower: 150,
		},
		{
			ID:              3,
			Title:           "Implement Skill Development Programs",
			Description:     "Create and fund skill development programs to help gig workers improve their skills and increase their earning potential on the platform.",
			CommunityID:     "plumbers",
			YesVotes:        1800,
			NoVotes:         200,
			Deadline:        date("2024-10-15"),
			UserVotingPower: 80,
		},
		{
			ID:              4,
			Title:           "Establish a Gig Worker Emergency Fund",
			Description:     "Set up an emergency fund to provide financial assistance to gig workers facing unexpected hardships or medical emergencies.",
			CommunityID:     "urban",
			YesVotes:        3000,
			NoVotes:         700,
			Deadline:        date("2024-09-30"),
			UserVotingPower: 120,
		},
		{
			ID:              5,
			Title:           "Introduce Peer-to-Peer Mentorship Program",
			Description:     "Create a mentorship program where experienced gig workers can guide and support newcomers, fostering community growth and knowledge sharing.",
			CommunityID:     "electricians",
			YesVotes:        1200,
			NoVotes:         300,
			Deadline:        date("2024-11-15"),
			UserVotingPower: 90,
		},
		{
			ID:              6,
			Title:           "Implement Fair Pricing Algorithm",
			Description:     "Develop and implement a transparent, fair pricing algorithm that ensures competitive rates for gig workers while maintaining affordability for customers.",
			CommunityID:     "handymen",
			YesVotes:        2500,
			NoVotes:         1000,
			Deadline:        date("2024-12-15"),
			UserVotingPower: 130,
		},
		{
			ID:              7,
			Title:           "Launch Gig Worker Cooperative Ownership Model",
			Description:     "Explore and implement a cooperative ownership model where long-term, high-performing gig workers can become partial owners of the platform.",
			CommunityID:     "plumbers",
			YesVotes:        1600,
			NoVotes:         900,
			Deadline:        date("2025-01-31"),
			UserVotingPower: 110,
		},
		{
			ID:              8,
			Title:           "Create a Gig Worker Wellness Program",
			Description:     "Establish a wellness program offering mental health support, stress management resources, and work-life balance guidance for gig workers.",
			CommunityID:     "urban",
			YesVotes:        2200,
			NoVotes:         400,
			Deadline:        date("2024-10-31"),
			UserVotingPower: 100,
		},
		{
			ID:              9,
			Title:           "Implement Blockchain-based Payment System",
			Description:     "Develop and integrate a blockchain-based payment system to ensure faster, more secure, and transparent transactions for gig workers.",
			CommunityID:     "electricians",
			YesVotes:        1800,
			NoVotes:         1200,
			Deadline:        date("2025-02-28"),
			UserVotingPower: 140,
		},
		{
			ID:              10,
			Title:           "Establish Gig Worker Representation Committee",
			Description:     "Form a committee with elected gig worker representatives to participate in platform decision-making processes and advocate for worker interests.",
			CommunityID:     "handymen",
			YesVotes:        2800,
			NoVotes:         600,
			Deadline:        date("2024-11-30"),
			UserVotingPower: 160,
		},
	}
}

func LendingRequests() []model.LendingRequest {
	return []model.LendingRequest{
		{
			ID:         1,
			Title:      "New sewing machine for tailoring business",
			Amount:     15000,
			Fulfilled:  10000,
			Deadline:   date("2024-11-15"),
			Requester:  "Priya Sharma",
			TrustScore: 85,
		},
		{
			ID:         2,
			Title:      "Education fees for computer course",
			Amount:     25000,
			Fulfilled:  5000,
			Deadline:   date("2024-12-01"),
			Requester:  "Rahul Patel",
			TrustScore: 92,
		},
		{
			ID:         3,
			Title:      "Stock for small grocery store",
			Amount:     50000,
			Fulfilled:  30000,
			Deadline:   date("2024-10-30"),
			Requester:  "Anita Desai",
			TrustScore: 78,
		},
	}
}

func Gigs() []model.Gig {
	return []model.Gig{
		{ID: 1, Title: "Install faucet", Category: model.CategoryPlumbing, Pay: 500, RoziCoins: 50, Duration: "2 hours", Location: "Indiranagar"},
		{ID: 2, Title: "Install ceiling fan", Category: model.CategoryElectrical, Pay: 800, RoziCoins: 80, Duration: "3 hours", Location: "Koramangala"},
		{ID: 3, Title: "Paint living room", Category: model.CategoryPainting, Pay: 2000, RoziCoins: 200, Duration: "1 day", Location: "Whitefield"},
		{ID: 4, Title: "Weekly pool maintenance", Category: model.CategoryMaintenance, Pay: 1500, RoziCoins: 150, Duration: "3 hours", Location: "JP Nagar", IsRecurring: true},
		{ID: 5, Title: "Repair door lock", Category: model.CategoryCarpentry, Pay: 400, RoziCoins: 40, Duration: "1 hour", Location: "Jayanagar"},
		{ID: 6, Title: "Monthly garden upkeep", Category: model.CategoryGardening, Pay: 1200, RoziCoins: 120, Duration: "4 hours", Location: "HSR Layout", IsRecurring: true},
	}
}

func Transactions() []model.Transaction {
	return []model.Transaction{
		{ID: "1", Type: model.TransactionReceived, Amount: 500, Currency: "₹", Counterparty: "ramesh.base.eth", Gig: "Fix a leaky faucet", Date: date("2023-10-15")},
		{ID: "2", Type: model.TransactionReceived, Amount: 200, Currency: "₹", Counterparty: "Rahul suresh", Gig: "Install ceiling fan", Date: date("2023-10-14")},
		{ID: "3", Type: model.TransactionReceived, Amount: 1000, Currency: "₹", Counterparty: "neha.base.eth", Gig: "Paint living room", Date: date("2023-10-13")},
		{ID: "4", Type: model.TransactionSent, Amount: 1500, Currency: "₹", Counterparty: "rani.base.eth", Gig: "Supplies", Date: date("2023-10-08")},
	}
}

func Profile() model.Profile {
	return model.Profile{
		Role:          "Plumber",
		Rating:        4.8,
		PlatformScore: 92,
		RoziCoins:     1500,
		TotalGigs:     65,
		TotalEarnings: 32505,
	}
}

func Benefits() []model.Benefit {
	return []model.Benefit{
		{
			Title: "Insurance",
			Emoji: "🛡️",
			Milestones: []model.Milestone{
				{Icon: "🏥", Title: "Health Coverage", IsUnlocked: true, Amount: "₹2 Lakh"},
				{Icon: "🚑", Title: "Accident Insurance", IsUnlocked: true, Amount: "₹5 Lakh"},
				{Icon: "👨‍👩‍👧‍👦", Title: "Family Coverage", UnlockCondition: "Complete 50 gigs to unlock", Amount: "₹10 Lakh"},
			},
		},
		{
			Title: "Loans",
			Emoji: "💰",
			Milestones: []model.Milestone{
				{Icon: "🚨", Title: "Emergency Loan", IsUnlocked: true, Amount: "Up to ₹50,000"},
				{Icon: "💼", Title: "Business Loan", UnlockCondition: "Complete 100 gigs to unlock", Amount: "Up to ₹5 Lakh"},
				{Icon: "🏠", Title: "Housing Loan", UnlockCondition: "Maintain 4.8 rating for 6 months", Amount: "Up to ₹50 Lakh"},
			},
		},
		{
			Title: "Subsidies",
			Emoji: "🏷️",
			Milestones: []model.Milestone{
				{Icon: "🔧", Title: "Supplies Discount", IsUnlocked: true, Amount: "20% off"},
				{Icon: "📚", Title: "Skill Upgrade", UnlockCondition: "Complete 75 gigs to unlock", Amount: "₹10,000 voucher"},
				{Icon: "🎫", Title: "License Renewal", UnlockCondition: "Maintain 4.7 rating for 1 year", Amount: "50% off"},
			},
		},
	}
}

func ImportSources() []model.ImportSource {
	return []model.ImportSource{
		{Name: "Swiggy", Logo: "https://cdn.worldvectorlogo.com/logos/swiggy-1.svg", IsImported: true},
		{Name: "Uber", Logo: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSlJIOGtHi6yLhWs9gI0Bz1T83KoUzuqCQ7IQ&s", IsImported: true},
		{Name: "Dunzo", Logo: "https://seeklogo.com/images/D/dunzo-logo-FF49681C98-seeklogo.com.png", IsImported: true},
		{Name: "Zomato", Logo: "https://cdn.iconscout.com/icon/free/png-256/free-zomato-logo-icon-download-in-svg-png-gif-file-formats--food-company-brand-delivery-brans-logos-icons-1637644.png"},
		{Name: "Urban Company", Logo: "https://us1-photo.nextdoor.com/business_logo/43/ac/43aceb18fc9e049d7dd8fe386ffca1b6.png"},
		{Name: "Ola", Logo: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQtBF8Ykrp-0P0YUf-9ZsgzdA4Bj2Z4So3PvA&s"},
	}
}
