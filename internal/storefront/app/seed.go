package app

import (
	"github.com/shopspring/decimal"

	"github.com/jcmexdev/fantasy-books/internal/storefront/domain"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// SeedBooks is the catalog written on first run.
func SeedBooks() []domain.Book {
	return []domain.Book{
		{ID: 1, Title: "The Name of the Wind", Author: "Patrick Rothfuss", Genre: "Epic Fantasy", Price: price("45.90"), Stock: 24, Rating: 4.8, Reviews: 1284, Image: "assets/images/books/name-of-the-wind.jpg", Description: "A gifted young man grows into the most notorious wizard his world has ever seen."},
		{ID: 2, Title: "Mistborn: The Final Empire", Author: "Brandon Sanderson", Genre: "Epic Fantasy", Price: price("39.90"), Stock: 18, Rating: 4.7, Reviews: 986, Image: "assets/images/books/mistborn.jpg", Description: "A street thief joins a crew planning to overthrow an immortal emperor using the magic of metals."},
		{ID: 3, Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Classic Fantasy", Price: price("29.90"), Stock: 42, Rating: 4.9, Reviews: 2310, Image: "assets/images/books/the-hobbit.jpg", Description: "Bilbo Baggins is swept into a quest to reclaim a dwarven treasure guarded by a dragon."},
		{ID: 4, Title: "A Wizard of Earthsea", Author: "Ursula K. Le Guin", Genre: "Classic Fantasy", Price: price("32.50"), Stock: 7, Rating: 4.5, Reviews: 642, Image: "assets/images/books/wizard-of-earthsea.jpg", Description: "A young mage must hunt the shadow he unleashed upon the world."},
		{ID: 5, Title: "The Lies of Locke Lamora", Author: "Scott Lynch", Genre: "Dark Fantasy", Price: price("42.00"), Stock: 12, Rating: 4.6, Reviews: 731, Image: "assets/images/books/locke-lamora.jpg", Description: "A con artist and his gang of Gentlemen Bastards play a dangerous game in the city of Camorr."},
		{ID: 6, Title: "The Blade Itself", Author: "Joe Abercrombie", Genre: "Dark Fantasy", Price: price("38.90"), Stock: 0, Rating: 4.4, Reviews: 518, Image: "assets/images/books/blade-itself.jpg", Description: "A torturer, a barbarian and a vain nobleman are drawn into a war they barely understand."},
		{ID: 7, Title: "Uprooted", Author: "Naomi Novik", Genre: "Fairy Tale", Price: price("35.00"), Stock: 15, Rating: 4.3, Reviews: 455, Image: "assets/images/books/uprooted.jpg", Description: "A village girl is taken by the Dragon, the wizard who guards the valley from a corrupted wood."},
		{ID: 8, Title: "Spinning Silver", Author: "Naomi Novik", Genre: "Fairy Tale", Price: price("36.90"), Stock: 9, Rating: 4.4, Reviews: 389, Image: "assets/images/books/spinning-silver.jpg", Description: "A moneylender's daughter boasts she can turn silver into gold and catches the ear of the winter king."},
		{ID: 9, Title: "The Priory of the Orange Tree", Author: "Samantha Shannon", Genre: "Epic Fantasy", Price: price("55.00"), Stock: 11, Rating: 4.2, Reviews: 402, Image: "assets/images/books/priory.jpg", Description: "A world divided by faith must unite against the rising Nameless One."},
		{ID: 10, Title: "Jonathan Strange & Mr Norrell", Author: "Susanna Clarke", Genre: "Historical Fantasy", Price: price("48.00"), Stock: 5, Rating: 4.1, Reviews: 297, Image: "assets/images/books/strange-norrell.jpg", Description: "Two magicians bring English magic back in the age of the Napoleonic wars."},
		{ID: 11, Title: "The Night Circus", Author: "Erin Morgenstern", Genre: "Historical Fantasy", Price: price("33.90"), Stock: 27, Rating: 4.3, Reviews: 874, Image: "assets/images/books/night-circus.jpg", Description: "A circus that opens only at night hosts a duel between two young illusionists."},
		{ID: 12, Title: "The Way of Kings", Author: "Brandon Sanderson", Genre: "Epic Fantasy", Price: price("59.90"), Stock: 14, Rating: 4.9, Reviews: 1732, Image: "assets/images/books/way-of-kings.jpg", Description: "On a storm-swept world, a soldier, a scholar and a highprince face the return of an ancient enemy."},
		{ID: 13, Title: "Circe", Author: "Madeline Miller", Genre: "Mythic Fantasy", Price: price("34.90"), Stock: 31, Rating: 4.6, Reviews: 1120, Image: "assets/images/books/circe.jpg", Description: "The witch of Aiaia tells her own story of gods, monsters and exile."},
		{ID: 14, Title: "The Fifth Season", Author: "N.K. Jemisin", Genre: "Dark Fantasy", Price: price("37.50"), Stock: 3, Rating: 4.7, Reviews: 812, Image: "assets/images/books/fifth-season.jpg", Description: "At the end of the world a mother searches for the daughter taken from her."},
		{ID: 15, Title: "Piranesi", Author: "Susanna Clarke", Genre: "Mythic Fantasy", Price: price("31.90"), Stock: 20, Rating: 4.5, Reviews: 663, Image: "assets/images/books/piranesi.jpg", Description: "A man lives in a house of endless halls and tides and keeps a careful journal."},
		{ID: 16, Title: "The Bear and the Nightingale", Author: "Katherine Arden", Genre: "Fairy Tale", Price: price("30.00"), Stock: 16, Rating: 4.2, Reviews: 508, Image: "assets/images/books/bear-nightingale.jpg", Description: "In the Russian wilderness a girl defends her village from the spirits of winter."},
	}
}
