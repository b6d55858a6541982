package domain

// Shop item categories
const (
	CategoryLuck     = "luck"
	CategoryStatus   = "status"
	CategoryBoost    = "boost"
	CategoryDefense  = "defense"
	CategoryUtility  = "utility"
	CategoryGambling = "gambling"
)

// DefaultShopItems is the catalog seeded into every store
var DefaultShopItems = []ShopItem{
	{ID: 1, Name: "Lucky Charm", Description: "Increases your luck in games", Price: 5000, Emoji: "🍀", Category: CategoryLuck},
	{ID: 2, Name: "Golden Horseshoe", Description: "Better odds in the casino", Price: 10000, Emoji: "🐎", Category: CategoryLuck},
	{ID: 3, Name: "VIP Status", Description: "Exclusive VIP badge and perks", Price: 25000, Emoji: "👑", Category: CategoryStatus},
	{ID: 4, Name: "XP Multiplier", Description: "Earn double experience for a day", Price: 15000, Emoji: "⚡", Category: CategoryBoost},
	{ID: 5, Name: "Insurance", Description: "Protects you from big losses", Price: 30000, Emoji: "🛡️", Category: CategoryDefense},
	{ID: 6, Name: "Magic Crystal", Description: "A mysterious crystal with unknown powers", Price: 50000, Emoji: "💎", Category: CategoryLuck},
	{ID: 7, Name: "Quick Recharge", Description: "Shortens the wait for your next daily", Price: 20000, Emoji: "🔋", Category: CategoryUtility},
	{ID: 8, Name: "Bet Doubler", Description: "Doubles the stake of your next game", Price: 35000, Emoji: "🎲", Category: CategoryGambling},
}
