package scripture

const testCorpus = `THE BOOK OF GENESIS
CHAPTER 1
1 In the beginning God created the heaven and the earth.
2 And the earth was without form, and void; and darkness was upon the face of the deep.
CHAPTER 2
1 Thus the heavens and the earth were finished, and all the host of them.
THE BOOK OF PSALMS
PSALM 1
1 Blessed is the man that walketh not in the counsel of the ungodly.
PSALM 23
1 The LORD is my shepherd; I shall not want.
2 He maketh me to lie down in green pastures.
THE BOOK OF JOHN
CHAPTER 1
1 In the beginning was the Word, and the Word was with God, and the Word was God.
2 The same was in the beginning with God.
20 And he confessed, and denied not; but confessed, I am not the Christ.
CHAPTER 3
16 For God so loved the world, that he gave his only begotten Son.
CHAPTER 10
1 Verily, verily, I say unto you, He that entereth not by the door.
THE BOOK OF 1 JOHN
CHAPTER 4
8 He that loveth not knoweth not God; for God is love.
`

var testAbbreviations = Abbreviations{
	"gen":   "genesis",
	"jn":    "john",
	"ps":    "psalms",
	"psalm": "psalms",
	"1jn":   "1 john",
	"john":  "",
}
