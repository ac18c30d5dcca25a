package fakeapi

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bod/internal/client/models"
)

// Seed sizes, shaped like the public demo API.
const (
	seedUsers           = 10
	seedPostsPerUser    = 10
	seedAlbumsPerUser   = 10
	seedTodosPerUser    = 20
	seedCommentsPerPost = 5
	seedPhotosPerAlbum  = 5
)

var (
	firstNames = []string{"Leanne", "Ervin", "Clementine", "Patricia", "Chelsey", "Dennis", "Kurtis", "Nicholas", "Glenna", "Clementina"}
	lastNames  = []string{"Graham", "Howell", "Bauch", "Lebsack", "Dietrich", "Schulist", "Weissnat", "Runolfsdottir", "Reichert", "DuBuque"}
	cities     = []string{"Gwenborough", "Wisokyburgh", "McKenziehaven", "South Elvis", "Roscoeview", "South Christy", "Howemouth", "Aliyaview", "Bartholomebury", "Lebsackbury"}
	words      = []string{"sunt", "aut", "facere", "repellat", "provident", "occaecati", "excepturi", "optio", "reprehenderit", "qui", "est", "esse", "dolorem", "nesciunt", "quia", "et"}
)

func phrase(seed, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = words[(seed*7+i*3)%len(words)]
	}
	return strings.Join(parts, " ")
}

// Seed returns the deterministic initial dataset, keyed by resource name.
func Seed() map[string][]any {
	data := map[string][]any{}

	for u := 1; u <= seedUsers; u++ {
		first, last := firstNames[u-1], lastNames[u-1]
		username := strings.ToLower(first[:1] + last)
		data["users"] = append(data["users"], models.User{
			ID:       u,
			Name:     first + " " + last,
			Username: username,
			Email:    fmt.Sprintf("%s@example.net", username),
			Address: models.Address{
				Street:  fmt.Sprintf("%d Main Street", u*100),
				Suite:   fmt.Sprintf("Apt. %d", u*11),
				City:    cities[u-1],
				Zipcode: fmt.Sprintf("%05d", 10000+u*123),
				Geo:     models.Geo{Lat: fmt.Sprintf("%.4f", -37.3+float64(u)), Lng: fmt.Sprintf("%.4f", 81.1-float64(u))},
			},
			Phone:   fmt.Sprintf("1-770-736-%04d", 8000+u),
			Website: username + ".org",
			Company: models.Company{
				Name:        last + " Group",
				CatchPhrase: phrase(u, 4),
				BS:          phrase(u+1, 3),
			},
		})
	}

	post, album, todo, comment, photo := 0, 0, 0, 0, 0
	for u := 1; u <= seedUsers; u++ {
		for i := 0; i < seedPostsPerUser; i++ {
			post++
			data["posts"] = append(data["posts"], models.Post{UserID: u, ID: post, Title: phrase(post, 5), Body: phrase(post+3, 12)})
			for c := 0; c < seedCommentsPerPost; c++ {
				comment++
				data["comments"] = append(data["comments"], models.Comment{
					PostID: post, ID: comment, Name: phrase(comment, 4),
					Email: fmt.Sprintf("reader%d@example.com", comment), Body: phrase(comment+1, 10),
				})
			}
		}
		for i := 0; i < seedAlbumsPerUser; i++ {
			album++
			data["albums"] = append(data["albums"], models.Album{UserID: u, ID: album, Title: phrase(album, 3)})
			for p := 0; p < seedPhotosPerAlbum; p++ {
				photo++
				data["photos"] = append(data["photos"], models.Photo{
					AlbumID: album, ID: photo, Title: phrase(photo, 4),
					URL:          fmt.Sprintf("https://via.placeholder.com/600/%06x", photo*4099%0xffffff),
					ThumbnailURL: fmt.Sprintf("https://via.placeholder.com/150/%06x", photo*4099%0xffffff),
				})
			}
		}
		for i := 0; i < seedTodosPerUser; i++ {
			todo++
			data["todos"] = append(data["todos"], models.Todo{UserID: u, ID: todo, Title: phrase(todo, 4), Completed: todo%3 == 0})
		}
	}
	return data
}
