// Package catalog holds the fixed list of the 66 books of the Reina-Valera Bible
// that the importer loads. It is the only source of truth for which books exist.
package catalog

type Testament string

const (
	Old Testament = "Old"
	New Testament = "New"
)

type Book struct {
	Slug      string
	Name      string
	Testament Testament
	Order     int
	Chapters  int
}

// Books is ordered by canonical order. Chapters is the number of chapter pages
// the importer expects per book; 2 Crónicas is published with 29.
var Books = []Book{
	{Slug: "genesis", Name: "Génesis", Testament: Old, Order: 1, Chapters: 50},
	{Slug: "exodo", Name: "Éxodo", Testament: Old, Order: 2, Chapters: 40},
	{Slug: "levitico", Name: "Levítico", Testament: Old, Order: 3, Chapters: 27},
	{Slug: "numeros", Name: "Números", Testament: Old, Order: 4, Chapters: 36},
	{Slug: "deuteronomio", Name: "Deuteronomio", Testament: Old, Order: 5, Chapters: 34},
	{Slug: "josue", Name: "Josué", Testament: Old, Order: 6, Chapters: 24},
	{Slug: "jueces", Name: "Jueces", Testament: Old, Order: 7, Chapters: 21},
	{Slug: "rut", Name: "Rut", Testament: Old, Order: 8, Chapters: 4},
	{Slug: "1samuel", Name: "1 Samuel", Testament: Old, Order: 9, Chapters: 31},
	{Slug: "2samuel", Name: "2 Samuel", Testament: Old, Order: 10, Chapters: 24},
	{Slug: "1reyes", Name: "1 Reyes", Testament: Old, Order: 11, Chapters: 22},
	{Slug: "2reyes", Name: "2 Reyes", Testament: Old, Order: 12, Chapters: 25},
	{Slug: "1cronicas", Name: "1 Crónicas", Testament: Old, Order: 13, Chapters: 29},
	{Slug: "2cronicas", Name: "2 Crónicas", Testament: Old, Order: 14, Chapters: 29},
	{Slug: "esdras", Name: "Esdras", Testament: Old, Order: 15, Chapters: 10},
	{Slug: "nehemias", Name: "Nehemías", Testament: Old, Order: 16, Chapters: 13},
	{Slug: "ester", Name: "Ester", Testament: Old, Order: 17, Chapters: 10},
	{Slug: "job", Name: "Job", Testament: Old, Order: 18, Chapters: 42},
	{Slug: "salmos", Name: "Salmos", Testament: Old, Order: 19, Chapters: 150},
	{Slug: "proverbios", Name: "Proverbios", Testament: Old, Order: 20, Chapters: 31},
	{Slug: "eclesiastes", Name: "Eclesiastés", Testament: Old, Order: 21, Chapters: 12},
	{Slug: "cantares", Name: "Cantares", Testament: Old, Order: 22, Chapters: 8},
	{Slug: "isaias", Name: "Isaías", Testament: Old, Order: 23, Chapters: 66},
	{Slug: "jeremias", Name: "Jeremías", Testament: Old, Order: 24, Chapters: 52},
	{Slug: "lamentaciones", Name: "Lamentaciones", Testament: Old, Order: 25, Chapters: 5},
	{Slug: "ezequiel", Name: "Ezequiel", Testament: Old, Order: 26, Chapters: 48},
	{Slug: "daniel", Name: "Daniel", Testament: Old, Order: 27, Chapters: 12},
	{Slug: "oseas", Name: "Oseas", Testament: Old, Order: 28, Chapters: 14},
	{Slug: "joel", Name: "Joel", Testament: Old, Order: 29, Chapters: 3},
	{Slug: "amos", Name: "Amós", Testament: Old, Order: 30, Chapters: 9},
	{Slug: "abdias", Name: "Abdías", Testament: Old, Order: 31, Chapters: 1},
	{Slug: "jonas", Name: "Jonás", Testament: Old, Order: 32, Chapters: 4},
	{Slug: "miqueas", Name: "Miqueas", Testament: Old, Order: 33, Chapters: 7},
	{Slug: "nahum", Name: "Nahúm", Testament: Old, Order: 34, Chapters: 3},
	{Slug: "habacuc", Name: "Habacuc", Testament: Old, Order: 35, Chapters: 3},
	{Slug: "sofonias", Name: "Sofonías", Testament: Old, Order: 36, Chapters: 3},
	{Slug: "hageo", Name: "Hageo", Testament: Old, Order: 37, Chapters: 2},
	{Slug: "zacarias", Name: "Zacarías", Testament: Old, Order: 38, Chapters: 14},
	{Slug: "malaquias", Name: "Malaquías", Testament: Old, Order: 39, Chapters: 4},

	{Slug: "mateo", Name: "Mateo", Testament: New, Order: 40, Chapters: 28},
	{Slug: "marcos", Name: "Marcos", Testament: New, Order: 41, Chapters: 16},
	{Slug: "lucas", Name: "Lucas", Testament: New, Order: 42, Chapters: 24},
	{Slug: "juan", Name: "Juan", Testament: New, Order: 43, Chapters: 21},
	{Slug: "hechos", Name: "Hechos", Testament: New, Order: 44, Chapters: 28},
	{Slug: "romanos", Name: "Romanos", Testament: New, Order: 45, Chapters: 16},
	{Slug: "1corintios", Name: "1 Corintios", Testament: New, Order: 46, Chapters: 16},
	{Slug: "2corintios", Name: "2 Corintios", Testament: New, Order: 47, Chapters: 13},
	{Slug: "galatas", Name: "Gálatas", Testament: New, Order: 48, Chapters: 6},
	{Slug: "efesios", Name: "Efesios", Testament: New, Order: 49, Chapters: 6},
	{Slug: "filipenses", Name: "Filipenses", Testament: New, Order: 50, Chapters: 4},
	{Slug: "colosenses", Name: "Colosenses", Testament: New, Order: 51, Chapters: 4},
	{Slug: "1tesalonicenses", Name: "1 Tesalonicenses", Testament: New, Order: 52, Chapters: 5},
	{Slug: "2tesalonicenses", Name: "2 Tesalonicenses", Testament: New, Order: 53, Chapters: 3},
	{Slug: "1timoteo", Name: "1 Timoteo", Testament: New, Order: 54, Chapters: 6},
	{Slug: "2timoteo", Name: "2 Timoteo", Testament: New, Order: 55, Chapters: 4},
	{Slug: "tito", Name: "Tito", Testament: New, Order: 56, Chapters: 3},
	{Slug: "filemon", Name: "Filemón", Testament: New, Order: 57, Chapters: 1},
	{Slug: "hebreos", Name: "Hebreos", Testament: New, Order: 58, Chapters: 13},
	{Slug: "santiago", Name: "Santiago", Testament: New, Order: 59, Chapters: 5},
	{Slug: "1pedro", Name: "1 Pedro", Testament: New, Order: 60, Chapters: 5},
	{Slug: "2pedro", Name: "2 Pedro", Testament: New, Order: 61, Chapters: 3},
	{Slug: "1juan", Name: "1 Juan", Testament: New, Order: 62, Chapters: 5},
	{Slug: "2juan", Name: "2 Juan", Testament: New, Order: 63, Chapters: 1},
	{Slug: "3juan", Name: "3 Juan", Testament: New, Order: 64, Chapters: 1},
	{Slug: "judas", Name: "Judas", Testament: New, Order: 65, Chapters: 1},
	{Slug: "apocalipsis", Name: "Apocalipsis", Testament: New, Order: 66, Chapters: 22},
}

// Slugs returns a set of every known slug, for validators.
func Slugs() map[string]struct{} {
	set := make(map[string]struct{}, len(Books))
	for _, b := range Books {
		set[b.Slug] = struct{}{}
	}
	return set
}
