package data

import (
	"fmt"

	"github.com/google/uuid"
)

var movieNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/kerbaras/movies"))

// MovieID derives a stable identifier from a title and release year, so
// remakes sharing a title get different ids.
func MovieID(title string, year int) string {
	return uuid.NewSHA1(movieNamespace, []byte(fmt.Sprintf("%s (%d)", title, year))).String()
}

func newMovie(title, description string, year int, rating float64, genres ...Genre) Movie {
	return Movie{
		ID:          MovieID(title, year),
		Title:       title,
		Description: description,
		Genres:      genres,
		ReleaseYear: year,
		Rating:      rating,
	}
}

// InitializeMovies returns the built-in catalog. Each call returns a fresh slice.
func InitializeMovies() []Movie {
	return []Movie{
		newMovie("The Usual Suspects",
			"A sole survivor tells of the twisty events leading up to a horrific gun battle on a boat, which began when five criminals met at a seemingly random police lineup.",
			1995, 8.5, Crime, Drama, Mystery),
		newMovie("Puss in Boots",
			"An outlaw cat, his childhood egg-friend, and a seductive thief kitty set out in search for the eggs of the fabled Golden Goose to clear his name, restore his lost honor, and regain the trust of his mother and town.",
			2011, 6.6, Comedy, Family, Animation),
		newMovie("Avatar",
			"A paraplegic Marine dispatched to the moon Pandora on a unique mission becomes torn between following his orders and protecting the world he feels is his home.",
			2009, 7.9, Animation, Drama, Action),
		newMovie("The Wolf of Wall Street",
			"Based on the true story of Jordan Belfort, from his rise to a wealthy stock-broker living the high life to his fall involving crime, corruption and the federal government.",
			2013, 8.2, Drama, Romance, Biography),
		newMovie("Life Is Beautiful",
			"When an open-minded Jewish librarian and his son become victims of the Holocaust, he uses a perfect mixture of will, humor, and imagination to protect his son from the dangers around their camp.",
			1997, 8.6, Drama, Romance),
		newMovie("The Godfather",
			"The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
			1972, 9.2, Crime, Drama),
		newMovie("Pulp Fiction",
			"The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
			1994, 8.9, Crime, Drama),
		newMovie("Interstellar",
			"A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
			2014, 8.7, Adventure, Drama, ScienceFiction),
		newMovie("The Shining",
			"A family heads to an isolated hotel for the winter where a sinister presence influences the father into violence.",
			1980, 8.4, Drama, Horror),
		newMovie("Spirited Away",
			"During her family's move to the suburbs, a sullen girl wanders into a world ruled by gods, witches, and spirits, where humans are changed into beasts.",
			2001, 8.6, Animation, Adventure, Family, Fantasy),
		newMovie("The Good, the Bad and the Ugly",
			"A bounty hunting scam joins two men in an uneasy alliance against a third in a race to find a fortune in gold buried in a remote cemetery.",
			1966, 8.8, Adventure, Western),
		newMovie("Saving Private Ryan",
			"Following the Normandy Landings, a group of soldiers go behind enemy lines to retrieve a paratrooper whose brothers have been killed in action.",
			1998, 8.6, Drama, War),
		newMovie("Knives Out",
			"A detective investigates the death of the patriarch of an eccentric, combative family.",
			2019, 7.9, Comedy, Crime, Mystery),
		newMovie("Rocky",
			"A small-time Philadelphia boxer gets a supremely rare chance to fight the world heavyweight champion in a bout in which he strives to go the distance for his self-respect.",
			1976, 8.1, Drama, Sport),
		newMovie("Free Solo",
			"Alex Honnold attempts to become the first person to ever free solo climb El Capitan.",
			2018, 8.1, Documentary, Adventure, Sport),
		newMovie("Oppenheimer",
			"The story of American scientist J. Robert Oppenheimer and his role in the development of the atomic bomb.",
			2023, 8.3, Biography, Drama, History),
		newMovie("La La Land",
			"While navigating their careers in Los Angeles, a pianist and an actress fall in love while attempting to reconcile their aspirations for the future.",
			2016, 8.0, Comedy, Drama, Musical, Romance),
		newMovie("Se7en",
			"Two detectives, a rookie and a veteran, hunt a serial killer who uses the seven deadly sins as his motives.",
			1995, 8.6, Crime, Mystery, Thriller),
	}
}
