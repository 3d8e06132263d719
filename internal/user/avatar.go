package user

import "fmt"

// AvatarURL génère une URL de portrait stable pour une même graine :
// le même username donne toujours la même image.
func AvatarURL(seed string) string {
	hash := hashString(seed)
	gender := "women"
	if hash%2 == 0 {
		gender = "men"
	}
	return fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", gender, hash%100+1)
}

func hashString(s string) int {
	var hash int32
	for _, c := range s {
		hash = hash<<5 - hash + c
	}
	if hash < 0 {
		return int(-hash)
	}
	return int(hash)
}
