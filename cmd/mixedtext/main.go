/*
Command mixedtext segments text mixing Arabic, Urdu and Latin script and
outputs it line by line, with direction control for terminals or as HTML.

	mixedtext lines "The Prophet ﷺ said: إنما الأعمال بالنيات"
	mixedtext lines --html --file tafseer.txt
	mixedtext segments "Hello بسم الله World"
	mixedtext explain "ﷺ۝پ"
*/
package main

import "log"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
