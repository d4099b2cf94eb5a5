package catalog

import "github.com/justestif/go-mood-recommender/internal/mood"

// Built-in catalog, ten songs and ten movies per mood.

var seedSongs = []Song{
	// happy
	{Title: "Happy", Artist: "Pharrell Williams", Genre: "Pop", Mood: mood.Happy, URL: "https://www.youtube.com/watch?v=ZbZSe6N_BXs"},
	{Title: "Walking on Sunshine", Artist: "Katrina & The Waves", Genre: "Pop", Mood: mood.Happy, URL: "https://www.youtube.com/watch?v=iPUmE-tne5U"},
	{Title: "Uptown Funk", Artist: "Bruno Mars ft. Mark Ronson", Genre: "Funk/Pop", Mood: mood.Happy, URL: "https://www.youtube.com/watch?v=OPf0YbXqDm0"},
	{Title: "Can't Stop the Feeling!", Artist: "Justin Timberlake", Genre: "Pop", Mood: mood.Happy, URL: "https://www.youtube.com/watch?v=ru0K8uYEZWw"},
	{Title: "Good as Hell", Artist: "Lizzo", Genre: "Pop/R&B", Mood: mood.Happy, URL: "https://www.youtube.com/watch?v=SmbmeOgWsqE"},
	{Title: "Shake It Off", Artist: "Taylor Swift", Genre: "Pop", Mood: mood.Happy, URL: "https://www.youtube.com/watch?v=nfWlot6h_JM"},
	{Title: "I Gotta Feeling", Artist: "The Black Eyed Peas", Genre: "Pop", Mood: mood.Happy, URL: "https://www.youtube.com/watch?v=uSD4vsh1zDA"},
	{Title: "Best Day of My Life", Artist: "American Authors", Genre: "Indie Pop", Mood: mood.Happy, URL: "https://www.youtube.com/watch?v=Y66j_BUCBMY"},
	{Title: "On Top of the World", Artist: "Imagine Dragons", Genre: "Pop Rock", Mood: mood.Happy, URL: "https://www.youtube.com/watch?v=w5tWYmIOWGk"},
	{Title: "Don't Stop Me Now", Artist: "Queen", Genre: "Rock", Mood: mood.Happy, URL: "https://www.youtube.com/watch?v=HgzGwKwLmgM"},

	// sad
	{Title: "Someone Like You", Artist: "Adele", Genre: "Pop/Soul", Mood: mood.Sad, URL: "https://www.youtube.com/watch?v=hLQl3WQQoQ0"},
	{Title: "Fix You", Artist: "Coldplay", Genre: "Alternative Rock", Mood: mood.Sad, URL: "https://www.youtube.com/watch?v=k4V3Mo61fJM"},
	{Title: "Say Something", Artist: "A Great Big World ft. Christina Aguilera", Genre: "Pop", Mood: mood.Sad, URL: "https://www.youtube.com/watch?v=-2U0Ivkn2Ds"},
	{Title: "The Night We Met", Artist: "Lord Huron", Genre: "Indie Folk", Mood: mood.Sad, URL: "https://www.youtube.com/watch?v=KtlgYxa6BMU"},
	{Title: "Hurt", Artist: "Johnny Cash", Genre: "Country", Mood: mood.Sad, URL: "https://www.youtube.com/watch?v=8AHCfZTRGiI"},
	{Title: "Skinny Love", Artist: "Bon Iver", Genre: "Indie Folk", Mood: mood.Sad, URL: "https://www.youtube.com/watch?v=ssdgFoHLwnk"},
	{Title: "Let Her Go", Artist: "Passenger", Genre: "Folk Pop", Mood: mood.Sad, URL: "https://www.youtube.com/watch?v=RBumgq5yVrA"},
	{Title: "All I Want", Artist: "Kodaline", Genre: "Indie Rock", Mood: mood.Sad, URL: "https://www.youtube.com/watch?v=mtf7hC17IBM"},
	{Title: "Tears in Heaven", Artist: "Eric Clapton", Genre: "Soft Rock", Mood: mood.Sad, URL: "https://www.youtube.com/watch?v=JxPj3GAYYZ0"},
	{Title: "Mad World", Artist: "Gary Jules", Genre: "Alternative", Mood: mood.Sad, URL: "https://www.youtube.com/watch?v=4N3N1MlvVc4"},

	// angry
	{Title: "In the End", Artist: "Linkin Park", Genre: "Nu Metal", Mood: mood.Angry, URL: "https://www.youtube.com/watch?v=eVTXPUF4Oz4"},
	{Title: "Killing in the Name", Artist: "Rage Against the Machine", Genre: "Rock", Mood: mood.Angry, URL: "https://www.youtube.com/watch?v=bWXazVhlyxQ"},
	{Title: "Break Stuff", Artist: "Limp Bizkit", Genre: "Nu Metal", Mood: mood.Angry, URL: "https://www.youtube.com/watch?v=ZpUYjpKg9KY"},
	{Title: "Numb", Artist: "Linkin Park", Genre: "Alternative Rock", Mood: mood.Angry, URL: "https://www.youtube.com/watch?v=kXYiU_JCYtU"},
	{Title: "Bodies", Artist: "Drowning Pool", Genre: "Metal", Mood: mood.Angry, URL: "https://www.youtube.com/watch?v=04F4xlWSFh0"},
	{Title: "Given Up", Artist: "Linkin Park", Genre: "Alternative Metal", Mood: mood.Angry, URL: "https://www.youtube.com/watch?v=0xyxtzD54rM"},
	{Title: "Down with the Sickness", Artist: "Disturbed", Genre: "Nu Metal", Mood: mood.Angry, URL: "https://www.youtube.com/watch?v=09LTT0xwdfw"},
	{Title: "Chop Suey!", Artist: "System of a Down", Genre: "Alternative Metal", Mood: mood.Angry, URL: "https://www.youtube.com/watch?v=CSvFpBOe8eY"},
	{Title: "Last Resort", Artist: "Papa Roach", Genre: "Nu Metal", Mood: mood.Angry, URL: "https://www.youtube.com/watch?v=Hm7vnOC4hoY"},
	{Title: "The Pretender", Artist: "Foo Fighters", Genre: "Rock", Mood: mood.Angry, URL: "https://www.youtube.com/watch?v=SBjQ9tuuTJQ"},

	// neutral
	{Title: "Viva la Vida", Artist: "Coldplay", Genre: "Alternative Rock", Mood: mood.Neutral, URL: "https://www.youtube.com/watch?v=dvgZkm1xWPE"},
	{Title: "Clocks", Artist: "Coldplay", Genre: "Alternative Rock", Mood: mood.Neutral, URL: "https://www.youtube.com/watch?v=d020hcWA_Wg"},
	{Title: "Sittin' on the Dock of the Bay", Artist: "Otis Redding", Genre: "Soul", Mood: mood.Neutral, URL: "https://www.youtube.com/watch?v=rTVjnBo96Ug"},
	{Title: "Hotel California", Artist: "Eagles", Genre: "Rock", Mood: mood.Neutral, URL: "https://www.youtube.com/watch?v=BciS5krYL80"},
	{Title: "Come Together", Artist: "The Beatles", Genre: "Rock", Mood: mood.Neutral, URL: "https://www.youtube.com/watch?v=45cYwDMibGo"},
	{Title: "Breathe", Artist: "Pink Floyd", Genre: "Progressive Rock", Mood: mood.Neutral, URL: "https://www.youtube.com/watch?v=mrojrDCI02k"},
	{Title: "Comfortably Numb", Artist: "Pink Floyd", Genre: "Progressive Rock", Mood: mood.Neutral, URL: "https://www.youtube.com/watch?v=_FrOQC-zEog"},
	{Title: "Space Oddity", Artist: "David Bowie", Genre: "Art Rock", Mood: mood.Neutral, URL: "https://www.youtube.com/watch?v=iYYRH4apXDo"},
	{Title: "The Sound of Silence", Artist: "Simon & Garfunkel", Genre: "Folk Rock", Mood: mood.Neutral, URL: "https://www.youtube.com/watch?v=4fWyzwo1xg0"},
	{Title: "Bohemian Rhapsody", Artist: "Queen", Genre: "Rock", Mood: mood.Neutral, URL: "https://www.youtube.com/watch?v=fJ9rUzIMcZQ"},

	// excited
	{Title: "Titanium", Artist: "David Guetta ft. Sia", Genre: "EDM", Mood: mood.Excited, URL: "https://www.youtube.com/watch?v=JRfuAukYTKg"},
	{Title: "Levels", Artist: "Avicii", Genre: "EDM", Mood: mood.Excited, URL: "https://www.youtube.com/watch?v=_ovdm2yX4MA"},
	{Title: "Stronger", Artist: "Kanye West", Genre: "Hip-Hop", Mood: mood.Excited, URL: "https://www.youtube.com/watch?v=PsO6ZnUZI0g"},
	{Title: "Eye of the Tiger", Artist: "Survivor", Genre: "Rock", Mood: mood.Excited, URL: "https://www.youtube.com/watch?v=btPJPFnesV4"},
	{Title: "We Will Rock You", Artist: "Queen", Genre: "Rock", Mood: mood.Excited, URL: "https://www.youtube.com/watch?v=-tJYN-eG1zk"},
	{Title: "Lose Yourself", Artist: "Eminem", Genre: "Hip-Hop", Mood: mood.Excited, URL: "https://www.youtube.com/watch?v=_Yhyp-_hX2s"},
	{Title: "Turn Down for What", Artist: "DJ Snake & Lil Jon", Genre: "EDM", Mood: mood.Excited, URL: "https://www.youtube.com/watch?v=HMUDVMiITOU"},
	{Title: "Thunderstruck", Artist: "AC/DC", Genre: "Hard Rock", Mood: mood.Excited, URL: "https://www.youtube.com/watch?v=v2AC41dglnM"},
	{Title: "Pump It", Artist: "The Black Eyed Peas", Genre: "Hip-Hop", Mood: mood.Excited, URL: "https://www.youtube.com/watch?v=ZaI2IlHwmgQ"},
	{Title: "Enter Sandman", Artist: "Metallica", Genre: "Metal", Mood: mood.Excited, URL: "https://www.youtube.com/watch?v=CD-E-LDc384"},

	// stressed
	{Title: "Weightless", Artist: "Marconi Union", Genre: "Ambient", Mood: mood.Stressed, URL: "https://www.youtube.com/watch?v=UfcAVejslrU"},
	{Title: "Clair de Lune", Artist: "Claude Debussy", Genre: "Classical", Mood: mood.Stressed, URL: "https://www.youtube.com/watch?v=CvFH_6DNRCY"},
	{Title: "Breathe Me", Artist: "Sia", Genre: "Indie Pop", Mood: mood.Stressed, URL: "https://www.youtube.com/watch?v=SFGvmrJ5rjM"},
	{Title: "River Flows in You", Artist: "Yiruma", Genre: "Classical", Mood: mood.Stressed, URL: "https://www.youtube.com/watch?v=7maJOI3QMu0"},
	{Title: "Gymnopédie No.1", Artist: "Erik Satie", Genre: "Classical", Mood: mood.Stressed, URL: "https://www.youtube.com/watch?v=S-Xm7s9eGxU"},
	{Title: "Sunset Lover", Artist: "Petit Biscuit", Genre: "Electronic/Chill", Mood: mood.Stressed, URL: "https://www.youtube.com/watch?v=wuCK-oiE3rM"},
	{Title: "Re: Stacks", Artist: "Bon Iver", Genre: "Indie Folk", Mood: mood.Stressed, URL: "https://www.youtube.com/watch?v=GhDnyPsQBSA"},
	{Title: "Bloom", Artist: "The Paper Kites", Genre: "Indie Folk", Mood: mood.Stressed, URL: "https://www.youtube.com/watch?v=w4XdnD5c334"},
	{Title: "To Build a Home", Artist: "The Cinematic Orchestra", Genre: "Post-Rock", Mood: mood.Stressed, URL: "https://www.youtube.com/watch?v=oUFJJNQGwhk"},
	{Title: "Everything's Not Lost", Artist: "Coldplay", Genre: "Alternative Rock", Mood: mood.Stressed, URL: "https://www.youtube.com/watch?v=frrFsIF6Gfo"},
}

var seedMovies = []Movie{
	// happy
	{Title: "The Pursuit of Happyness", Genre: "Drama/Biography", Year: 2006, Mood: mood.Happy, Platform: "Netflix", URL: "https://www.netflix.com/title/70044605"},
	{Title: "Forrest Gump", Genre: "Drama/Comedy", Year: 1994, Mood: mood.Happy, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Forrest-Gump/0PIYQ4TED6Y6B6JNQQ37AHQW0K"},
	{Title: "The Intern", Genre: "Comedy", Year: 2015, Mood: mood.Happy, Platform: "Netflix", URL: "https://www.netflix.com/title/80047616"},
	{Title: "Zootopia", Genre: "Animation/Comedy", Year: 2016, Mood: mood.Happy, Platform: "Disney+ Hotstar", URL: "https://www.hotstar.com/in/movies/zootopia/1260009992"},
	{Title: "Paddington 2", Genre: "Comedy/Family", Year: 2017, Mood: mood.Happy, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Paddington-2/0MZV8PRRKG2PW5UYYLJ1IM1MIR"},
	{Title: "La La Land", Genre: "Musical/Romance", Year: 2016, Mood: mood.Happy, Platform: "Netflix", URL: "https://www.netflix.com/title/80095365"},
	{Title: "Inside Out", Genre: "Animation/Comedy", Year: 2015, Mood: mood.Happy, Platform: "Disney+ Hotstar", URL: "https://www.hotstar.com/in/movies/inside-out/1260009998"},
	{Title: "The Secret Life of Walter Mitty", Genre: "Adventure/Comedy", Year: 2013, Mood: mood.Happy, Platform: "Disney+ Hotstar", URL: "https://www.hotstar.com/in/movies/walter-mitty/1260009150"},
	{Title: "Up", Genre: "Animation/Adventure", Year: 2009, Mood: mood.Happy, Platform: "Disney+ Hotstar", URL: "https://www.hotstar.com/in/movies/up/1260009990"},
	{Title: "Sing Street", Genre: "Musical/Drama", Year: 2016, Mood: mood.Happy, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Sing-Street/0NMBNR0W93CL5PKGWNP9OTB05M"},

	// sad
	{Title: "The Fault in Our Stars", Genre: "Romance/Drama", Year: 2014, Mood: mood.Sad, Platform: "Disney+ Hotstar", URL: "https://www.hotstar.com/in/movies/the-fault-in-our-stars/1260009060"},
	{Title: "A Star Is Born", Genre: "Drama/Music", Year: 2018, Mood: mood.Sad, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/A-Star-Is-Born/0PINLRQSJYA15JW6TS5KOFDXYE"},
	{Title: "Schindler's List", Genre: "Drama/History", Year: 1993, Mood: mood.Sad, Platform: "Netflix", URL: "https://www.netflix.com/title/60036359"},
	{Title: "The Green Mile", Genre: "Drama/Fantasy", Year: 1999, Mood: mood.Sad, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/The-Green-Mile/0I8QUYB3HVXIJ3BHGVTM4ZXP6N"},
	{Title: "Hachi: A Dog's Tale", Genre: "Drama/Family", Year: 2009, Mood: mood.Sad, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Hachi-A-Dogs-Tale/0R8Y82VSXFZ0YX3CSYJ8GXRJJ4"},
	{Title: "Marriage Story", Genre: "Drama/Romance", Year: 2019, Mood: mood.Sad, Platform: "Netflix", URL: "https://www.netflix.com/title/80223779"},
	{Title: "Manchester by the Sea", Genre: "Drama", Year: 2016, Mood: mood.Sad, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Manchester-by-the-Sea/0R7AGKCVW6F0R0PS21RA1QRQV9"},
	{Title: "Blue Valentine", Genre: "Drama/Romance", Year: 2010, Mood: mood.Sad, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Blue-Valentine/0J5TXMXPID8DW2H54JQ3N6DHLX"},
	{Title: "Grave of the Fireflies", Genre: "Animation/Drama", Year: 1988, Mood: mood.Sad, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Grave-of-the-Fireflies/0HXWY5XPGDXBRNRJVQ2L3FR2O4"},
	{Title: "Eternal Sunshine of the Spotless Mind", Genre: "Drama/Romance", Year: 2004, Mood: mood.Sad, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Eternal-Sunshine/0QQWKN1ZRD2U89YCXKCV95BF5P"},

	// angry
	{Title: "John Wick", Genre: "Action/Thriller", Year: 2014, Mood: mood.Angry, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/John-Wick/0N2MIGZ1PXYCFQ7H34YI2R04XV"},
	{Title: "Mad Max: Fury Road", Genre: "Action/Adventure", Year: 2015, Mood: mood.Angry, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Mad-Max-Fury-Road/0PINLRQSJY4EX3NB8R13MZ8T8I"},
	{Title: "Fight Club", Genre: "Drama/Thriller", Year: 1999, Mood: mood.Angry, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Fight-Club/0L6DGKK8SYYGRHVWVLJ8DSGQIV"},
	{Title: "Kill Bill: Vol. 1", Genre: "Action/Thriller", Year: 2003, Mood: mood.Angry, Platform: "Netflix", URL: "https://www.netflix.com/title/60031236"},
	{Title: "The Dark Knight", Genre: "Action/Drama", Year: 2008, Mood: mood.Angry, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/The-Dark-Knight/0SMBDWQ69CH77HWGMPCN2IM0ZM"},
	{Title: "Gladiator", Genre: "Action/Drama", Year: 2000, Mood: mood.Angry, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Gladiator/0T8443NJDRABRB5M37JXSH6QDM"},
	{Title: "V for Vendetta", Genre: "Action/Thriller", Year: 2005, Mood: mood.Angry, Platform: "Netflix", URL: "https://www.netflix.com/title/70039175"},
	{Title: "300", Genre: "Action/Fantasy", Year: 2006, Mood: mood.Angry, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/300/0JPT36TXQMNFWFUOAG0X3HMI5V"},
	{Title: "Django Unchained", Genre: "Western/Drama", Year: 2012, Mood: mood.Angry, Platform: "Netflix", URL: "https://www.netflix.com/title/70230640"},
	{Title: "Oldboy", Genre: "Thriller/Mystery", Year: 2003, Mood: mood.Angry, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Oldboy/0MHXB10NUZPG4KKGX6P1IX4EPT"},

	// neutral
	{Title: "Inception", Genre: "Sci-Fi/Thriller", Year: 2010, Mood: mood.Neutral, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Inception/0PINLRQSJY7FKN6KSMQTMHQAFV"},
	{Title: "The Grand Budapest Hotel", Genre: "Comedy/Drama", Year: 2014, Mood: mood.Neutral, Platform: "Disney+ Hotstar", URL: "https://www.hotstar.com/in/movies/the-grand-budapest-hotel/1260026103"},
	{Title: "Interstellar", Genre: "Sci-Fi/Drama", Year: 2014, Mood: mood.Neutral, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Interstellar/0RF1RGHF0BQ7V0X8YGDCAH8JYT"},
	{Title: "The Truman Show", Genre: "Comedy/Drama", Year: 1998, Mood: mood.Neutral, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/The-Truman-Show/0N7UHMNTIJ7DSPGV2D3IPRJ2XJ"},
	{Title: "Life of Pi", Genre: "Adventure/Drama", Year: 2012, Mood: mood.Neutral, Platform: "Disney+ Hotstar", URL: "https://www.hotstar.com/in/movies/life-of-pi/1260009103"},
	{Title: "The Social Network", Genre: "Drama/Biography", Year: 2010, Mood: mood.Neutral, Platform: "Netflix", URL: "https://www.netflix.com/title/70132721"},
	{Title: "Her", Genre: "Drama/Romance", Year: 2013, Mood: mood.Neutral, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Her/0SNMYB1GNLP3FXSMVZUOPBWVMF"},
	{Title: "Amélie", Genre: "Comedy/Romance", Year: 2001, Mood: mood.Neutral, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Amelie/0FLQ84E7SQZRBKB2P8KK1JY92T"},
	{Title: "Lost in Translation", Genre: "Drama/Comedy", Year: 2003, Mood: mood.Neutral, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Lost-in-Translation/0NQRMJFKH6CU2W2B1NV6N3F0F5"},
	{Title: "Spirited Away", Genre: "Animation/Fantasy", Year: 2001, Mood: mood.Neutral, Platform: "Netflix", URL: "https://www.netflix.com/title/60023642"},

	// excited
	{Title: "Avengers: Endgame", Genre: "Action/Sci-Fi", Year: 2019, Mood: mood.Excited, Platform: "Disney+ Hotstar", URL: "https://www.hotstar.com/in/movies/avengers-endgame/1260022800"},
	{Title: "Top Gun: Maverick", Genre: "Action/Drama", Year: 2022, Mood: mood.Excited, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Top-Gun-Maverick/0P9THGVLHH0D8JR36H6A9G8GYC"},
	{Title: "Spider-Man: Into the Spider-Verse", Genre: "Animation/Action", Year: 2018, Mood: mood.Excited, Platform: "Netflix", URL: "https://www.netflix.com/title/81002747"},
	{Title: "Baby Driver", Genre: "Action/Music", Year: 2017, Mood: mood.Excited, Platform: "Netflix", URL: "https://www.netflix.com/title/80142090"},
	{Title: "Guardians of the Galaxy", Genre: "Action/Comedy", Year: 2014, Mood: mood.Excited, Platform: "Disney+ Hotstar", URL: "https://www.hotstar.com/in/movies/guardians-of-the-galaxy/1260009107"},
	{Title: "Mission: Impossible - Fallout", Genre: "Action/Thriller", Year: 2018, Mood: mood.Excited, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Mission-Impossible-Fallout/0QK2CGZOPQKC5DL13V7DHOFQLA"},
	{Title: "The Matrix", Genre: "Sci-Fi/Action", Year: 1999, Mood: mood.Excited, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/The-Matrix/0K8TPJR2FD3GW7FPXLG7R0CLZP"},
	{Title: "Ready Player One", Genre: "Sci-Fi/Adventure", Year: 2018, Mood: mood.Excited, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Ready-Player-One/0QLVKQFX5HQB34V3J9HKKNTZR6"},
	{Title: "Black Panther", Genre: "Action/Sci-Fi", Year: 2018, Mood: mood.Excited, Platform: "Disney+ Hotstar", URL: "https://www.hotstar.com/in/movies/black-panther/1260015803"},
	{Title: "Jurassic World", Genre: "Action/Sci-Fi", Year: 2015, Mood: mood.Excited, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Jurassic-World/0K2JRJ27KCXKJH94AI3P3XWPQQ"},

	// stressed
	{Title: "Soul", Genre: "Animation/Comedy", Year: 2020, Mood: mood.Stressed, Platform: "Disney+ Hotstar", URL: "https://www.hotstar.com/in/movies/soul/1260035131"},
	{Title: "The Secret Garden", Genre: "Drama/Family", Year: 2020, Mood: mood.Stressed, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/The-Secret-Garden/0LDR4MZWG1M97TXYXVH48SBF9L"},
	{Title: "My Neighbor Totoro", Genre: "Animation/Fantasy", Year: 1988, Mood: mood.Stressed, Platform: "Netflix", URL: "https://www.netflix.com/title/60032294"},
	{Title: "Midnight in Paris", Genre: "Comedy/Fantasy", Year: 2011, Mood: mood.Stressed, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/Midnight-in-Paris/0OQWV5F0DR79IJ2TXVKWG5GJPD"},
	{Title: "The Hundred-Foot Journey", Genre: "Drama/Comedy", Year: 2014, Mood: mood.Stressed, Platform: "Disney+ Hotstar", URL: "https://www.hotstar.com/in/movies/the-hundred-foot-journey/1260009113"},
	{Title: "Chef", Genre: "Comedy/Drama", Year: 2014, Mood: mood.Stressed, Platform: "Netflix", URL: "https://www.netflix.com/title/70297087"},
	{Title: "Eat Pray Love", Genre: "Drama/Romance", Year: 2010, Mood: mood.Stressed, Platform: "Netflix", URL: "https://www.netflix.com/title/70130775"},
	{Title: "About Time", Genre: "Comedy/Romance", Year: 2013, Mood: mood.Stressed, Platform: "Netflix", URL: "https://www.netflix.com/title/70261674"},
	{Title: "The Way", Genre: "Adventure/Drama", Year: 2010, Mood: mood.Stressed, Platform: "Prime Video", URL: "https://www.primevideo.com/detail/The-Way/0F2GKNN2M70F0B6RBZS1C2I9AB"},
	{Title: "Piku", Genre: "Comedy/Drama", Year: 2015, Mood: mood.Stressed, Platform: "Netflix", URL: "https://www.netflix.com/title/80073455"},
}
