package amhapy

// SampleProgram is the bundled demonstration program that the sample
// command writes to disk. It exercises every keyword in the vocabulary
// plus comments, nesting, lists, and method calls.
const SampleProgram = `# AmhaPy demonstration program

አሳይ "ሰላም ለዓለም!"

# Assignment and printing
ስም = "አበበ"
ውጤት = 85
ዕድሜ = 22
አሳይ "ስም:", ስም
አሳይ "ውጤት:", ውጤት

# Conditionals
ከሆነ ውጤት ትልቅ_ወይም_እኩል 50:
    አሳይ ስም, "አልፏል"
    ከሆነ ዕድሜ ትልቅ 18:
        አሳይ "ለዩኒቨርሲቲ ብቁ ነው"
ያለበለዚያ_ከሆነ ውጤት እኩል 50:
    አሳይ "መሃል ላይ"
ያለበለዚያ:
    አሳይ ስም, "ወድቋል"

# While loop counts down
ቆጣሪ = 3
እስከሆነ ቆጣሪ ትልቅ 0:
    አሳይ "ቆጣሪ:", ቆጣሪ
    ቆጣሪ = ቆጣሪ - 1

# For loop over a range
ለ ቁጥር በ ክልል(1, 4):
    አሳይ "ዙር:", ቁጥር

# Lists
ነጥቦች = [10, 20, 30]
ለ ነጥብ በ ነጥቦች:
    አሳይ ነጥብ

# Functions
ሥራ ድምር(ሀ, ለሁለት):
    መመለስ ሀ + ለሁለት

አሳይ "ድምር:", ድምር(15, 25)

# Booleans and logic
ብቁ = እውነት
ዝግጁ = ሐሰት
ከሆነ ብቁ እና አይደለም ዝግጁ:
    አሳይ "በመጠባበቅ ላይ"
ከሆነ ብቁ ወይም ዝግጁ:
    አሳይ "ቢያንስ አንድ እውነት ነው"
ከሆነ ዕድሜ እኩል_አይደለም 0 እና ዕድሜ ትንሽ 100:
    አሳይ "ዕድሜው ትክክል ነው"
ከሆነ 1 ትንሽ_ወይም_እኩል ዕድሜ:
    አሳይ "አዎ"

# Method calls pass through
መልእክት = "amhapy"
አሳይ መልእክት.upper()
`
