package services

import (
	"sort"
	"strings"
	"sync"

	"pousada/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi, bỏ dấu tiếng Bồ Đào Nha
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách tên khách
func createGuestMatcher(names []string) *closestmatch.ClosestMatch {
	return closestmatch.New(names, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

type ScoredGuest struct {
	Guest models.Guest
	Score int
}

// scoreGuest tính điểm phù hợp của khách với từ khóa
func scoreGuest(query string, guest models.Guest, cm *closestmatch.ClosestMatch) int {
	score := 0
	normalizedName := normalizeInput(guest.Name)

	if strings.Contains(guest.CPF, query) {
		score += 20
	}
	if strings.Contains(normalizedName, query) {
		score += 15
	}
	if cm != nil && cm.Closest(query) == normalizedName {
		score += 10
	}
	if calculateSimilarity(query, normalizedName) > 0.7 {
		score += 5
	}

	return score
}

// SearchGuests lọc và xếp hạng khách theo tên hoặc CPF
func SearchGuests(query string, guests []models.Guest) []models.Guest {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return guests
	}

	names := make([]string, 0, len(guests))
	for _, g := range guests {
		names = append(names, normalizeInput(g.Name))
	}
	cm := createGuestMatcher(names)

	scoreCh := make(chan ScoredGuest, len(guests))
	var wg sync.WaitGroup

	for _, guest := range guests {
		wg.Add(1)
		go func(guest models.Guest) {
			defer wg.Done()
			score := scoreGuest(normalizedQuery, guest, cm)
			if score > 0 {
				scoreCh <- ScoredGuest{Guest: guest, Score: score}
			}
		}(guest)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []ScoredGuest
	for sg := range scoreCh {
		scored = append(scored, sg)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	result := make([]models.Guest, 0, len(scored))
	for _, sg := range scored {
		result = append(result, sg.Guest)
	}
	return result
}
