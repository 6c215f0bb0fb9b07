package reminder

// Rotating reminder bodies, cycled one per delivery.
var hydrationMessages = []string{
	"Time to drink some water! Stay hydrated 💧",
	"Your body needs water. Take a sip! 🥤",
	"Hydration check! Have a glass of water 💦",
	"Don't forget to drink water! 🚰",
	"Water break! Your health will thank you 💙",
	"Stay refreshed, drink some water now! 🌊",
	"A glass of water keeps you energized ⚡",
	"Drink up! Hydration fuels your day 💧",
}

const hydrationTitle = "Time to Hydrate! 💧"

const testMessage = "This is a test reminder. Your hydration reminders are working!"
